package frames

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joefazee/iwager/models"
)

// Card images are rendered as 1200x630 SVG documents, the aspect ratio
// Farcaster clients expect for fc:frame:image.
const (
	imageWidth  = 1200
	imageHeight = 630
)

type cardImage struct {
	Width      int
	Height     int
	Background string
	TitleColor string
	TextColor  string
	Title      string
	Lines      []string
}

var cardImageTmpl = template.Must(template.New("card").Funcs(template.FuncMap{
	"lineY": func(i int) int { return 260 + i*50 },
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <rect width="100%" height="100%" fill="{{.Background}}"/>
  <text x="600" y="180" text-anchor="middle" font-family="system-ui, sans-serif" font-size="56" font-weight="bold" fill="{{.TitleColor}}">{{.Title}}</text>
  {{- range $i, $line := .Lines}}
  <text x="600" y="{{lineY $i}}" text-anchor="middle" font-family="system-ui, sans-serif" font-size="32" fill="{{$.TextColor}}">{{$line}}</text>
  {{- end}}
</svg>`))

type marketImage struct {
	Width      int
	Height     int
	Question   string
	Pool       string
	Closes     string
	YesPercent int
	NoPercent  int
	YesBarW    int
	NoBarW     int
}

var marketImageTmpl = template.Must(template.New("market").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <rect width="100%" height="100%" fill="#f0f2f5"/>
  <rect x="100" y="60" width="1000" height="510" rx="24" fill="#ffffff"/>
  <text x="600" y="160" text-anchor="middle" font-family="system-ui, sans-serif" font-size="44" font-weight="bold" fill="#111827">{{.Question}}</text>
  <text x="180" y="250" font-family="system-ui, sans-serif" font-size="30" fill="#6b7280">💰 Pool: {{.Pool}} USDC</text>
  <text x="700" y="250" font-family="system-ui, sans-serif" font-size="30" fill="#6b7280">⏰ Closes: {{.Closes}}</text>
  <text x="180" y="360" font-family="system-ui, sans-serif" font-size="36" font-weight="bold" fill="#10b981">YES: {{.YesPercent}}%</text>
  <rect x="180" y="390" width="400" height="16" rx="8" fill="#e5e7eb"/>
  <rect x="180" y="390" width="{{.YesBarW}}" height="16" rx="8" fill="#10b981"/>
  <text x="640" y="360" font-family="system-ui, sans-serif" font-size="36" font-weight="bold" fill="#ef4444">NO: {{.NoPercent}}%</text>
  <rect x="640" y="390" width="400" height="16" rx="8" fill="#e5e7eb"/>
  <rect x="640" y="390" width="{{.NoBarW}}" height="16" rx="8" fill="#ef4444"/>
</svg>`))

var hundred = decimal.NewFromInt(100)

func renderCard(c cardImage) string {
	c.Width, c.Height = imageWidth, imageHeight
	if c.Background == "" {
		c.Background = "#f0f2f5"
	}
	if c.TitleColor == "" {
		c.TitleColor = "#111827"
	}
	if c.TextColor == "" {
		c.TextColor = "#6b7280"
	}

	var sb strings.Builder
	if err := cardImageTmpl.Execute(&sb, c); err != nil {
		return ""
	}
	return sb.String()
}

// RenderHomeImage is the landing card
func RenderHomeImage() string {
	return renderCard(cardImage{
		Title: "iWager Prediction Markets",
		Lines: []string{
			"Bet on the future with USDC",
			"✅ AI-validated predictions",
			"🏆 Transparent outcomes",
			"Click \"View Markets\" to start betting!",
		},
	})
}

// RenderNoMarketsImage is shown when the store has no markets yet
func RenderNoMarketsImage(triggerHandle string) string {
	return renderCard(cardImage{
		Title: "No Markets Available",
		Lines: []string{
			"Be the first to create a prediction!",
			fmt.Sprintf("Mention %s with your prediction on Farcaster", triggerHandle),
		},
	})
}

// RenderErrorImage carries a short failure message
func RenderErrorImage(message string) string {
	if message == "" {
		message = "Unknown error"
	}
	return renderCard(cardImage{
		Background: "#fef2f2",
		TitleColor: "#ef4444",
		TextColor:  "#ef4444",
		Title:      "Error",
		Lines:      []string{message, "Please try again later"},
	})
}

// RenderBetConfirmImage previews the stake before confirmation
func RenderBetConfirmImage(side, amount string) string {
	return renderCard(cardImage{
		Title: "Confirm Your Bet",
		Lines: []string{
			strings.ToUpper(side),
			"$" + amount + " USDC",
			"Click \"Confirm\" to proceed or \"Cancel\" to go back",
		},
	})
}

// RenderBetSuccessImage acknowledges a confirmed bet
func RenderBetSuccessImage(side, amount string) string {
	return renderCard(cardImage{
		Background: "#f0fdf4",
		TitleColor: "#10b981",
		TextColor:  "#10b981",
		Title:      "Bet Confirmed!",
		Lines: []string{
			fmt.Sprintf("%s - $%s USDC", strings.ToUpper(side), amount),
			"Navigate back to view more markets or details",
		},
	})
}

// RenderMarketImage draws the market card with the YES/NO split bars
func RenderMarketImage(m *models.Market) string {
	yes, no := sharesSplit(m)

	img := marketImage{
		Width:      imageWidth,
		Height:     imageHeight,
		Question:   m.Question,
		Pool:       "$" + m.TotalPool.StringFixed(2),
		Closes:     m.CloseTime.Format("Jan 2, 2006"),
		YesPercent: yes,
		NoPercent:  no,
		YesBarW:    yes * 4,
		NoBarW:     no * 4,
	}

	var sb strings.Builder
	if err := marketImageTmpl.Execute(&sb, img); err != nil {
		return ""
	}
	return sb.String()
}

// RenderDetailsImage lists the market's metadata
func RenderDetailsImage(m *models.Market) string {
	marketID := m.MarketID
	if len(marketID) > 20 {
		marketID = marketID[:20] + "..."
	}

	return renderCard(cardImage{
		Title: "Market Details",
		Lines: []string{
			m.Question,
			"Creator: @" + m.CreatorUsername,
			"Closes: " + m.CloseTime.Format("Jan 2, 2006"),
			fmt.Sprintf("AI Confidence: %d%%", int(m.AIConfidence*100+0.5)),
			"Market ID: " + marketID,
			fmt.Sprintf("Total Pool: $%s USDC", m.TotalPool.StringFixed(2)),
			fmt.Sprintf("Participants: %d users", len(m.Participants)),
		},
	})
}

// sharesSplit converts share totals to whole percentages, defaulting to an
// even 50/50 split for a market with no bets.
func sharesSplit(m *models.Market) (yes, no int) {
	total := m.YesShares.Add(m.NoShares)
	if total.IsZero() {
		return 50, 50
	}
	yes = int(m.YesShares.Div(total).Mul(hundred).Round(0).IntPart())
	return yes, 100 - yes
}
