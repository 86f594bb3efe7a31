package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrNilSnapshot            = errors.New("market snapshot is nil")
	ErrUnknownEvidence        = errors.New("unknown evidence variant")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrRootNotBracketed       = errors.New("root not bracketed")
	ErrInsufficientMarketData = errors.New("insufficient market data")
)

// InvalidPriceError reports a market left with too few usable prices
type InvalidPriceError struct {
	Market   string
	Valid    int
	Required int
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid prices in %s market: %d valid, %d required", e.Market, e.Valid, e.Required)
}

// Is matches ErrInvalidPrice
func (e *InvalidPriceError) Is(target error) bool {
	return target == ErrInvalidPrice
}

// RootNotBracketedError reports a bisection whose bracket search was exhausted
type RootNotBracketedError struct {
	Component string
	Low       float64
	High      float64
}

func (e *RootNotBracketedError) Error() string {
	return fmt.Sprintf("%s: root not bracketed in [%g, %g]", e.Component, e.Low, e.High)
}

// Is matches ErrRootNotBracketed
func (e *RootNotBracketedError) Is(target error) bool {
	return target == ErrRootNotBracketed
}

// InsufficientMarketDataError reports an event with neither a usable moneyline nor team goals
type InsufficientMarketDataError struct {
	EventID string
	Reason  string
}

func (e *InsufficientMarketDataError) Error() string {
	if e.EventID == "" {
		return fmt.Sprintf("insufficient market data: %s", e.Reason)
	}
	return fmt.Sprintf("insufficient market data for event %s: %s", e.EventID, e.Reason)
}

// Is matches ErrInsufficientMarketData
func (e *InsufficientMarketDataError) Is(target error) bool {
	return target == ErrInsufficientMarketData
}

// NewInvalidPriceError creates a new invalid price error
func NewInvalidPriceError(market string, valid, required int) *InvalidPriceError {
	return &InvalidPriceError{Market: market, Valid: valid, Required: required}
}

// NewRootNotBracketedError creates a new root bracketing error
func NewRootNotBracketedError(component string, low, high float64) *RootNotBracketedError {
	return &RootNotBracketedError{Component: component, Low: low, High: high}
}

// NewInsufficientMarketDataError creates a new insufficient data error
func NewInsufficientMarketDataError(eventID, reason string) *InsufficientMarketDataError {
	return &InsufficientMarketDataError{EventID: eventID, Reason: reason}
}
