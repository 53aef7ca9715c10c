package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition_FromMarket(t *testing.T) {
	market := MarketState("market_abc", "BTC hits $100k by December 31st")

	tests := []struct {
		name string
		in   Interaction
		want State
	}{
		{
			name: "button 1 bets yes with typed amount",
			in:   Interaction{ButtonIndex: 1, InputText: "25"},
			want: State{Kind: StateBetConfirm, MarketID: "market_abc", Question: market.Question, Side: SideYes, Amount: "25"},
		},
		{
			name: "button 2 bets no with default amount",
			in:   Interaction{ButtonIndex: 2},
			want: State{Kind: StateBetConfirm, MarketID: "market_abc", Question: market.Question, Side: SideNo, Amount: "5"},
		},
		{
			name: "button 3 opens details",
			in:   Interaction{ButtonIndex: 3},
			want: State{Kind: StateDetails, MarketID: "market_abc", Question: market.Question},
		},
		{
			name: "unknown button re-renders market",
			in:   Interaction{ButtonIndex: 7},
			want: market,
		},
		{
			name: "absent button re-renders market",
			in:   Interaction{},
			want: market,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(market, tt.in))
		})
	}
}

func TestTransition_FromBetConfirm(t *testing.T) {
	confirm := State{Kind: StateBetConfirm, MarketID: "market_abc", Side: SideNo, Amount: "10"}

	success := Transition(confirm, Interaction{ButtonIndex: 1})
	assert.Equal(t, StateBetSuccess, success.Kind)
	assert.Equal(t, SideNo, success.Side)
	assert.Equal(t, "10", success.Amount)

	cancelled := Transition(confirm, Interaction{ButtonIndex: 2})
	assert.Equal(t, StateMarket, cancelled.Kind)
	assert.Equal(t, "market_abc", cancelled.MarketID)
}

func TestTransition_FromDetails(t *testing.T) {
	details := State{Kind: StateDetails, MarketID: "market_abc"}

	for _, btn := range []int{1, 2, 9} {
		next := Transition(details, Interaction{ButtonIndex: btn})
		assert.Equal(t, StateMarket, next.Kind)
		assert.Equal(t, "market_abc", next.MarketID)
	}
}

// Pressing "Bet NO" with a typed stake, then confirming, reaches the
// success card carrying the same side and amount throughout.
func TestTransition_BetNoScenario(t *testing.T) {
	market := MarketState("market_abc", "ETH above $5k in 24h")

	confirm := Transition(market, Interaction{ButtonIndex: 2, InputText: "10"})
	assert.Equal(t, StateBetConfirm, confirm.Kind)
	assert.Equal(t, SideNo, confirm.Side)
	assert.Equal(t, "10", confirm.Amount)

	success := Transition(confirm, Interaction{ButtonIndex: 1})
	assert.Equal(t, StateBetSuccess, success.Kind)
	assert.Equal(t, SideNo, success.Side)
	assert.Equal(t, "10", success.Amount)
}

func TestAmountOrDefault(t *testing.T) {
	assert.Equal(t, "5", Interaction{}.AmountOrDefault())
	assert.Equal(t, "42", Interaction{InputText: "42"}.AmountOrDefault())
	assert.Equal(t, "5", Interaction{InputText: "   "}.AmountOrDefault())
	assert.Equal(t, "5", Interaction{InputText: "\t\n"}.AmountOrDefault())
	assert.Equal(t, "42", Interaction{InputText: " 42 "}.AmountOrDefault())
}
