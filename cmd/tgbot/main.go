// Telegram bot giving quick weight quotes: "rebar 12 12 5" answers with the
// weight of five 12 m bars of 12 mm rebar. Useful for sales staff who do not
// have the back office open.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	calc "Ferrum/internal/calc"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

const usage = `Commands:
sheet <type> <length m> <width m> <thickness mm> <density>
rebar <diameter mm> <length m> [qty]
beam <IPE height mm> <length m> [qty]
billet <side mm> <length m> [qty]
pipe <outer mm> <wall mm> <length m> [qty]
angle <leg mm> <thickness mm> <length m> [qty]`

func main() {
	token := os.Getenv("TOKEN_BOT")
	if token == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				sendMessage(token, u.Message.Chat.ID, handleText(u.Message.Text))
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func handleText(text string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) == 0 {
		return usage
	}

	in, err := parseCommand(fields)
	if err != nil {
		return usage
	}
	res := calc.CalculateWeight(in)
	if res == nil {
		return "Cannot calculate: check the dimensions"
	}
	return fmt.Sprintf("%.2f kg\n%s", res.WeightKg, res.Formula)
}

func parseCommand(fields []string) (calc.Input, error) {
	bad := fmt.Errorf("bad command")

	if fields[0] == "sheet" {
		if len(fields) != 6 {
			return calc.Input{}, bad
		}
		nums, err := parseFloats(fields[2:])
		if err != nil {
			return calc.Input{}, err
		}
		return calc.Input{
			Kind:      calc.Sheet,
			SheetType: calc.SheetType(fields[1]),
			Dims: calc.Dims{
				calc.DimLength:    nums[0],
				calc.DimWidth:     nums[1],
				calc.DimThickness: nums[2],
			},
			Density: nums[3],
		}, nil
	}

	// The bar shapes share the layout <dims...> [qty].
	commands := map[string]struct {
		kind calc.Kind
		keys []string
	}{
		"rebar":  {calc.Rebar, []string{calc.DimDiameter, calc.DimLength}},
		"beam":   {calc.Beam, []string{calc.DimHeight, calc.DimLength}},
		"billet": {calc.Billet, []string{calc.DimSide, calc.DimLength}},
		"pipe":   {calc.Pipe, []string{calc.DimDiameter, calc.DimWallThickness, calc.DimLength}},
		"angle":  {calc.Angle, []string{calc.DimSide, calc.DimThickness, calc.DimLength}},
	}
	command, ok := commands[fields[0]]
	if !ok {
		return calc.Input{}, bad
	}
	args := fields[1:]
	if len(args) < len(command.keys) || len(args) > len(command.keys)+1 {
		return calc.Input{}, bad
	}
	nums, err := parseFloats(args)
	if err != nil {
		return calc.Input{}, err
	}
	in := calc.Input{Kind: command.kind, Dims: calc.Dims{}}
	for i, key := range command.keys {
		in.Dims[key] = nums[i]
	}
	if len(nums) > len(command.keys) {
		in.Quantity = int(nums[len(command.keys)])
	}
	return in, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
