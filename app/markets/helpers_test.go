package markets

import "github.com/stretchr/testify/mock"

var (
	mockCtx   = mock.Anything
	anyString = mock.AnythingOfType("string")
	anyMarket = mock.AnythingOfType("*models.Market")
)
