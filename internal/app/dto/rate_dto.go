package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jftravel/flight-offer-service/internal/pkg/exception"
)

// LiveRatesRequest selects the base currency for the live rate board.
type LiveRatesRequest struct {
	Base string `json:"base" validate:"required,len=3,alpha"`
}

func (s *LiveRatesRequest) BindQuery(r *http.Request) error {
	s.Base = strings.ToUpper(r.URL.Query().Get("base"))
	if s.Base == "" {
		s.Base = "USD"
	}

	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// ClearRatesRequest selects the base currency whose cached snapshot is
// evicted by the admin clear endpoint.
type ClearRatesRequest struct {
	Base string `json:"base" validate:"required,len=3,alpha"`
}

func (s *ClearRatesRequest) BindQuery(r *http.Request) error {
	s.Base = strings.ToUpper(r.URL.Query().Get("base"))
	if s.Base == "" {
		s.Base = "USD"
	}

	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type ClearRatesResponse struct {
	Success bool   `json:"success"`
	Base    string `json:"base"`
	Message string `json:"message"`
}

// Spread is the display buy/sell pair derived from a mid rate.
type Spread struct {
	Buy  float64 `json:"buy"`
	Sell float64 `json:"sell"`
}

type LiveRatesResponse struct {
	Success   bool               `json:"success"`
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Spreads   map[string]Spread  `json:"spreads,omitempty"`
	Timestamp int64              `json:"timestamp"`
}

// ConvertRequest is the JSON body of the conversion endpoint.
type ConvertRequest struct {
	Amount float64 `json:"amount" validate:"min=0"`
	From   string  `json:"from" validate:"required,len=3,alpha"`
	To     string  `json:"to" validate:"required,len=3,alpha"`
}

func (s *ConvertRequest) Bind(_ *http.Request) error {
	s.From = strings.ToUpper(s.From)
	s.To = strings.ToUpper(s.To)

	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("error validate request: %s", err),
		}
	}

	return nil
}

// ConvertResponse reports a conversion. Live is false when no rate was
// available and the original amount passed through unconverted.
type ConvertResponse struct {
	Success   bool    `json:"success"`
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Rate      float64 `json:"rate,omitempty"`
	Live      bool    `json:"live"`
	Reason    string  `json:"reason,omitempty"`
	Timestamp int64   `json:"timestamp"`
}
