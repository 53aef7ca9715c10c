package frames

import "strings"

// StateKind discriminates navigation states
type StateKind string

const (
	StateHome       StateKind = "home"
	StateMarket     StateKind = "market"
	StateDetails    StateKind = "details"
	StateBetConfirm StateKind = "bet_confirm"
	StateBetSuccess StateKind = "bet_success"
	StateError      StateKind = "error"
	StateNoMarkets  StateKind = "no_markets"
)

// Bet sides as they appear in URLs and labels
const (
	SideYes = "yes"
	SideNo  = "no"
)

// DefaultAmount is the stake used when the viewer presses a bet button
// without typing an amount.
const DefaultAmount = "5"

// State is one node in the navigation graph. MarketID is set for every
// market-scoped state; Side and Amount only for the bet states; Message only
// for the error state. Question is carried for display and never affects
// transitions.
type State struct {
	Kind     StateKind
	MarketID string
	Side     string
	Amount   string
	Message  string
	Question string
}

// Interaction is what a Farcaster client reports for one button press.
// ButtonIndex is 1-based; zero means absent.
type Interaction struct {
	ButtonIndex int
	InputText   string
}

// AmountOrDefault returns the typed amount with surrounding whitespace
// removed, or DefaultAmount when the input was empty or only whitespace.
func (i Interaction) AmountOrDefault() string {
	amount := strings.TrimSpace(i.InputText)
	if amount == "" {
		return DefaultAmount
	}
	return amount
}

// MarketState builds the market view state
func MarketState(marketID, question string) State {
	return State{Kind: StateMarket, MarketID: marketID, Question: question}
}

// ErrorState builds the terminal error state
func ErrorState(message string) State {
	return State{Kind: StateError, Message: message}
}

// Transition maps one interaction against the current state to the next
// state. It is a pure function: no lookups, no side effects. Home-state
// resolution (finding the most recent market) needs the store and is done by
// the handler before rendering, not here.
func Transition(current State, in Interaction) State {
	switch current.Kind {
	case StateMarket:
		switch in.ButtonIndex {
		case 1:
			return State{Kind: StateBetConfirm, MarketID: current.MarketID, Question: current.Question, Side: SideYes, Amount: in.AmountOrDefault()}
		case 2:
			return State{Kind: StateBetConfirm, MarketID: current.MarketID, Question: current.Question, Side: SideNo, Amount: in.AmountOrDefault()}
		case 3:
			return State{Kind: StateDetails, MarketID: current.MarketID, Question: current.Question}
		default:
			// Unrecognized index re-renders the market unchanged.
			return current
		}

	case StateBetConfirm:
		if in.ButtonIndex == 1 {
			return State{Kind: StateBetSuccess, MarketID: current.MarketID, Question: current.Question, Side: current.Side, Amount: current.Amount}
		}
		return MarketState(current.MarketID, current.Question)

	case StateDetails:
		return MarketState(current.MarketID, current.Question)

	default:
		return current
	}
}
