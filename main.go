package main

import (
	auth "Ferrum/internal/auth"
	calc "Ferrum/internal/calc"
	batch "Ferrum/internal/calc/batch"
	importer "Ferrum/internal/calc/importer"
	report "Ferrum/internal/calc/report"
	catalog "Ferrum/internal/catalog"
	repo "Ferrum/internal/repo"
	users "Ferrum/internal/users"
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	productRepo := catalog.NewPostgresProductDB(db)
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	catalogH := &catalog.Handler{Repo: productRepo}
	api.HandleFunc("/products", catalogH.List).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", catalogH.Get).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	calcH := &calc.Handler{Prices: &catalog.Prices{Repo: productRepo}}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	// Fixed tool paths go first: mux matches in registration order, so the
	// {shape} wildcard would swallow them otherwise.
	secureApi.HandleFunc("/tools/batch/calc", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/import/sheet", importH.Sheet).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/{shape}/calc", calcH.Calc).Methods("POST")

	adminApi := api.PathPrefix("/admin").Subrouter()
	adminApi.Use(authEnv.AuthMiddleware, authEnv.RequireAdmin)

	usersH := &users.Handler{Repo: userRepo}
	adminApi.HandleFunc("/products/{id:[0-9]+}/price", catalogH.UpdatePrice).Methods("PUT")
	adminApi.HandleFunc("/users", usersH.List).Methods("GET")
	adminApi.HandleFunc("/users/{id:[0-9]+}", usersH.Get).Methods("GET")
	adminApi.HandleFunc("/users/{id:[0-9]+}/role", usersH.UpdateRole).Methods("PUT")
	adminApi.HandleFunc("/users/{id:[0-9]+}", usersH.Delete).Methods("DELETE")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on environment")
	}

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
