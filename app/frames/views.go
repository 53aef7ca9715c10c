package frames

import (
	"fmt"
	"net/url"
	"strings"
)

// CardView is the renderable description of one state: where the card's
// image lives, where button presses post back to, and what the buttons say.
type CardView struct {
	ImageURL    string
	PostURL     string
	Buttons     []string
	InputPrompt string
	Title       string
}

// MarketFrameURL returns the public URL of a market's card, used both for
// routing and for reply embeds.
func MarketFrameURL(baseURL, marketID string) string {
	return fmt.Sprintf("%s/api/v1/frames/markets/%s", baseURL, marketID)
}

func homeURL(baseURL string) string {
	return baseURL + "/api/v1/frames"
}

func imageURL(baseURL, name string, query url.Values) string {
	u := fmt.Sprintf("%s/api/v1/frames/images/%s", baseURL, name)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func betURL(baseURL, marketID, side, amount string) string {
	q := url.Values{"action": {side}, "amount": {amount}}
	return fmt.Sprintf("%s/api/v1/frames/bets/%s?%s", baseURL, marketID, q.Encode())
}

// View maps a state to its card. Pure: the same state always yields the
// same card shape.
func View(s State, baseURL string) CardView {
	switch s.Kind {
	case StateHome:
		return CardView{
			ImageURL: imageURL(baseURL, "home", nil),
			PostURL:  homeURL(baseURL),
			Buttons:  []string{"View Markets"},
			Title:    "iWager Prediction Markets",
		}

	case StateNoMarkets:
		return CardView{
			ImageURL: imageURL(baseURL, "no-markets", nil),
			PostURL:  homeURL(baseURL),
			Buttons:  []string{"No markets yet"},
			Title:    "iWager Prediction Markets",
		}

	case StateMarket:
		title := s.Question
		if title == "" {
			title = "iWager Market"
		}
		return CardView{
			ImageURL:    imageURL(baseURL, s.MarketID, nil),
			PostURL:     MarketFrameURL(baseURL, s.MarketID),
			Buttons:     []string{"Bet YES", "Bet NO", "Details"},
			InputPrompt: "Enter bet amount (USDC)",
			Title:       title,
		}

	case StateDetails:
		return CardView{
			ImageURL: imageURL(baseURL, s.MarketID, url.Values{"view": {"details"}}),
			PostURL:  MarketFrameURL(baseURL, s.MarketID),
			Buttons:  []string{"Back to Market", "View All Markets"},
			Title:    "Market Details: " + s.Question,
		}

	case StateBetConfirm:
		side := strings.ToUpper(s.Side)
		q := url.Values{"marketId": {s.MarketID}, "action": {s.Side}, "amount": {s.Amount}}
		return CardView{
			ImageURL: imageURL(baseURL, "bet-confirm", q),
			PostURL:  betURL(baseURL, s.MarketID, s.Side, s.Amount),
			Buttons:  []string{fmt.Sprintf("Confirm %s $%s", side, s.Amount), "Cancel"},
			Title:    fmt.Sprintf("Confirm %s Bet - $%s", side, s.Amount),
		}

	case StateBetSuccess:
		side := strings.ToUpper(s.Side)
		q := url.Values{"marketId": {s.MarketID}, "action": {s.Side}, "amount": {s.Amount}}
		return CardView{
			ImageURL: imageURL(baseURL, "bet-success", q),
			PostURL:  MarketFrameURL(baseURL, s.MarketID),
			Buttons:  []string{"Back to Market", "View All Markets"},
			Title:    fmt.Sprintf("Bet %s Confirmed!", side),
		}

	default: // StateError
		q := url.Values{}
		if s.Message != "" {
			q.Set("message", s.Message)
		}
		return CardView{
			ImageURL: imageURL(baseURL, "error", q),
			PostURL:  homeURL(baseURL),
			Buttons:  []string{"Back to Home"},
			Title:    "Error",
		}
	}
}
