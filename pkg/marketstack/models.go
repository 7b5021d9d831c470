package marketstack

import (
	"fmt"
)

// Dates are kept as the strings the API returns (for example
// "2024-03-01T00:00:00+0000") so they re-encode exactly.

// EodPrice is one end-of-day bar.
type EodPrice struct {
	Open        Optional[float64] `json:"open,omitzero"         yaml:"open,omitempty"`
	High        Optional[float64] `json:"high,omitzero"         yaml:"high,omitempty"`
	Low         Optional[float64] `json:"low,omitzero"          yaml:"low,omitempty"`
	Close       Optional[float64] `json:"close,omitzero"        yaml:"close,omitempty"`
	Volume      Optional[float64] `json:"volume,omitzero"       yaml:"volume,omitempty"`
	AdjHigh     Optional[float64] `json:"adj_high,omitzero"     yaml:"adj_high,omitempty"`
	AdjLow      Optional[float64] `json:"adj_low,omitzero"      yaml:"adj_low,omitempty"`
	AdjClose    Optional[float64] `json:"adj_close,omitzero"    yaml:"adj_close,omitempty"`
	AdjOpen     Optional[float64] `json:"adj_open,omitzero"     yaml:"adj_open,omitempty"`
	AdjVolume   Optional[float64] `json:"adj_volume,omitzero"   yaml:"adj_volume,omitempty"`
	SplitFactor Optional[float64] `json:"split_factor,omitzero" yaml:"split_factor,omitempty"`
	Dividend    Optional[float64] `json:"dividend,omitzero"     yaml:"dividend,omitempty"`
	Symbol      Optional[string]  `json:"symbol,omitzero"       yaml:"symbol,omitempty"`
	Exchange    Optional[string]  `json:"exchange,omitzero"     yaml:"exchange,omitempty"`
	Date        Optional[string]  `json:"date,omitzero"         yaml:"date,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *EodPrice) UnmarshalJSON(data []byte) error {
	type plain EodPrice

	err := decodeObject(data, (*plain)(p), &p.Additional)
	if err != nil {
		return fmt.Errorf("decoding eod price: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (p EodPrice) MarshalJSON() ([]byte, error) {
	type plain EodPrice

	data, err := encodeObject(plain(p), p.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding eod price: %w", err)
	}

	return data, nil
}

// IntervalPrice is one intraday bar.
type IntervalPrice struct {
	Open     Optional[float64] `json:"open,omitzero"     yaml:"open,omitempty"`
	High     Optional[float64] `json:"high,omitzero"     yaml:"high,omitempty"`
	Low      Optional[float64] `json:"low,omitzero"      yaml:"low,omitempty"`
	Last     Optional[float64] `json:"last,omitzero"     yaml:"last,omitempty"`
	Close    Optional[float64] `json:"close,omitzero"    yaml:"close,omitempty"`
	Volume   Optional[float64] `json:"volume,omitzero"   yaml:"volume,omitempty"`
	Date     Optional[string]  `json:"date,omitzero"     yaml:"date,omitempty"`
	Symbol   Optional[string]  `json:"symbol,omitzero"   yaml:"symbol,omitempty"`
	Exchange Optional[string]  `json:"exchange,omitzero" yaml:"exchange,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *IntervalPrice) UnmarshalJSON(data []byte) error {
	type plain IntervalPrice

	err := decodeObject(data, (*plain)(p), &p.Additional)
	if err != nil {
		return fmt.Errorf("decoding interval price: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (p IntervalPrice) MarshalJSON() ([]byte, error) {
	type plain IntervalPrice

	data, err := encodeObject(plain(p), p.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding interval price: %w", err)
	}

	return data, nil
}

// Split is a stock split event.
type Split struct {
	Date        Optional[string]  `json:"date,omitzero"         yaml:"date,omitempty"`
	SplitFactor Optional[float64] `json:"split_factor,omitzero" yaml:"split_factor,omitempty"`
	Symbol      Optional[string]  `json:"symbol,omitzero"       yaml:"symbol,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Split) UnmarshalJSON(data []byte) error {
	type plain Split

	err := decodeObject(data, (*plain)(s), &s.Additional)
	if err != nil {
		return fmt.Errorf("decoding split: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Split) MarshalJSON() ([]byte, error) {
	type plain Split

	data, err := encodeObject(plain(s), s.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding split: %w", err)
	}

	return data, nil
}

// Dividend is a cash dividend event.
type Dividend struct {
	Date     Optional[string]  `json:"date,omitzero"     yaml:"date,omitempty"`
	Dividend Optional[float64] `json:"dividend,omitzero" yaml:"dividend,omitempty"`
	Symbol   Optional[string]  `json:"symbol,omitzero"   yaml:"symbol,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dividend) UnmarshalJSON(data []byte) error {
	type plain Dividend

	err := decodeObject(data, (*plain)(d), &d.Additional)
	if err != nil {
		return fmt.Errorf("decoding dividend: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Dividend) MarshalJSON() ([]byte, error) {
	type plain Dividend

	data, err := encodeObject(plain(d), d.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding dividend: %w", err)
	}

	return data, nil
}

// Currency describes a trading currency.
type Currency struct {
	Code   Optional[string] `json:"code,omitzero"   yaml:"code,omitempty"`
	Symbol Optional[string] `json:"symbol,omitzero" yaml:"symbol,omitempty"`
	Name   Optional[string] `json:"name,omitzero"   yaml:"name,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Currency) UnmarshalJSON(data []byte) error {
	type plain Currency

	err := decodeObject(data, (*plain)(c), &c.Additional)
	if err != nil {
		return fmt.Errorf("decoding currency: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Currency) MarshalJSON() ([]byte, error) {
	type plain Currency

	data, err := encodeObject(plain(c), c.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding currency: %w", err)
	}

	return data, nil
}

// Timezone describes an exchange timezone.
type Timezone struct {
	Timezone Optional[string] `json:"timezone,omitzero" yaml:"timezone,omitempty"`
	Abbr     Optional[string] `json:"abbr,omitzero"     yaml:"abbr,omitempty"`
	AbbrDST  Optional[string] `json:"abbr_dst,omitzero" yaml:"abbr_dst,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (tz *Timezone) UnmarshalJSON(data []byte) error {
	type plain Timezone

	err := decodeObject(data, (*plain)(tz), &tz.Additional)
	if err != nil {
		return fmt.Errorf("decoding timezone: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (tz Timezone) MarshalJSON() ([]byte, error) {
	type plain Timezone

	data, err := encodeObject(plain(tz), tz.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding timezone: %w", err)
	}

	return data, nil
}

// Exchange describes a stock exchange identified by its MIC.
type Exchange struct {
	Name        Optional[string]   `json:"name,omitzero"         yaml:"name,omitempty"`
	Acronym     Optional[string]   `json:"acronym,omitzero"      yaml:"acronym,omitempty"`
	MIC         Optional[string]   `json:"mic,omitzero"          yaml:"mic,omitempty"`
	Country     Optional[string]   `json:"country,omitzero"      yaml:"country,omitempty"`
	CountryCode Optional[string]   `json:"country_code,omitzero" yaml:"country_code,omitempty"`
	City        Optional[string]   `json:"city,omitzero"         yaml:"city,omitempty"`
	Website     Optional[string]   `json:"website,omitzero"      yaml:"website,omitempty"`
	Timezone    Optional[Timezone] `json:"timezone,omitzero"     yaml:"timezone,omitempty"`
	Currency    Optional[Currency] `json:"currency,omitzero"     yaml:"currency,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Exchange) UnmarshalJSON(data []byte) error {
	type plain Exchange

	err := decodeObject(data, (*plain)(e), &e.Additional)
	if err != nil {
		return fmt.Errorf("decoding exchange: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e Exchange) MarshalJSON() ([]byte, error) {
	type plain Exchange

	data, err := encodeObject(plain(e), e.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding exchange: %w", err)
	}

	return data, nil
}

// Ticker describes a listed symbol.
type Ticker struct {
	Name          Optional[string]   `json:"name,omitzero"           yaml:"name,omitempty"`
	Symbol        Optional[string]   `json:"symbol,omitzero"         yaml:"symbol,omitempty"`
	HasIntraday   Optional[bool]     `json:"has_intraday,omitzero"   yaml:"has_intraday,omitempty"`
	HasEOD        Optional[bool]     `json:"has_eod,omitzero"        yaml:"has_eod,omitempty"`
	Country       Optional[string]   `json:"country,omitzero"        yaml:"country,omitempty"`
	StockExchange Optional[Exchange] `json:"stock_exchange,omitzero" yaml:"stock_exchange,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Ticker) UnmarshalJSON(data []byte) error {
	type plain Ticker

	err := decodeObject(data, (*plain)(t), &t.Additional)
	if err != nil {
		return fmt.Errorf("decoding ticker: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Ticker) MarshalJSON() ([]byte, error) {
	type plain Ticker

	data, err := encodeObject(plain(t), t.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding ticker: %w", err)
	}

	return data, nil
}

// TickerEod is a ticker together with its end-of-day bars.
type TickerEod struct {
	Name        Optional[string]     `json:"name,omitzero"         yaml:"name,omitempty"`
	Symbol      Optional[string]     `json:"symbol,omitzero"       yaml:"symbol,omitempty"`
	HasIntraday Optional[bool]       `json:"has_intraday,omitzero" yaml:"has_intraday,omitempty"`
	HasEOD      Optional[bool]       `json:"has_eod,omitzero"      yaml:"has_eod,omitempty"`
	Country     Optional[string]     `json:"country,omitzero"      yaml:"country,omitempty"`
	EOD         Optional[[]EodPrice] `json:"eod,omitzero"          yaml:"eod,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TickerEod) UnmarshalJSON(data []byte) error {
	type plain TickerEod

	err := decodeObject(data, (*plain)(t), &t.Additional)
	if err != nil {
		return fmt.Errorf("decoding ticker eod: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t TickerEod) MarshalJSON() ([]byte, error) {
	type plain TickerEod

	data, err := encodeObject(plain(t), t.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding ticker eod: %w", err)
	}

	return data, nil
}

// TickerIntraday is a ticker together with its intraday bars.
type TickerIntraday struct {
	Name        Optional[string]          `json:"name,omitzero"         yaml:"name,omitempty"`
	Symbol      Optional[string]          `json:"symbol,omitzero"       yaml:"symbol,omitempty"`
	HasIntraday Optional[bool]            `json:"has_intraday,omitzero" yaml:"has_intraday,omitempty"`
	HasEOD      Optional[bool]            `json:"has_eod,omitzero"      yaml:"has_eod,omitempty"`
	Country     Optional[string]          `json:"country,omitzero"      yaml:"country,omitempty"`
	Intraday    Optional[[]IntervalPrice] `json:"intraday,omitzero"     yaml:"intraday,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TickerIntraday) UnmarshalJSON(data []byte) error {
	type plain TickerIntraday

	err := decodeObject(data, (*plain)(t), &t.Additional)
	if err != nil {
		return fmt.Errorf("decoding ticker intraday: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t TickerIntraday) MarshalJSON() ([]byte, error) {
	type plain TickerIntraday

	data, err := encodeObject(plain(t), t.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding ticker intraday: %w", err)
	}

	return data, nil
}

// ExchangeEod is an exchange together with end-of-day bars of its tickers.
type ExchangeEod struct {
	Name        Optional[string]     `json:"name,omitzero"         yaml:"name,omitempty"`
	Acronym     Optional[string]     `json:"acronym,omitzero"      yaml:"acronym,omitempty"`
	MIC         Optional[string]     `json:"mic,omitzero"          yaml:"mic,omitempty"`
	Country     Optional[string]     `json:"country,omitzero"      yaml:"country,omitempty"`
	CountryCode Optional[string]     `json:"country_code,omitzero" yaml:"country_code,omitempty"`
	City        Optional[string]     `json:"city,omitzero"         yaml:"city,omitempty"`
	Website     Optional[string]     `json:"website,omitzero"      yaml:"website,omitempty"`
	EOD         Optional[[]EodPrice] `json:"eod,omitzero"          yaml:"eod,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ExchangeEod) UnmarshalJSON(data []byte) error {
	type plain ExchangeEod

	err := decodeObject(data, (*plain)(e), &e.Additional)
	if err != nil {
		return fmt.Errorf("decoding exchange eod: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e ExchangeEod) MarshalJSON() ([]byte, error) {
	type plain ExchangeEod

	data, err := encodeObject(plain(e), e.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding exchange eod: %w", err)
	}

	return data, nil
}

// ExchangeIntraday is an exchange together with intraday bars of its tickers.
type ExchangeIntraday struct {
	Name        Optional[string]          `json:"name,omitzero"         yaml:"name,omitempty"`
	Acronym     Optional[string]          `json:"acronym,omitzero"      yaml:"acronym,omitempty"`
	MIC         Optional[string]          `json:"mic,omitzero"          yaml:"mic,omitempty"`
	Country     Optional[string]          `json:"country,omitzero"      yaml:"country,omitempty"`
	CountryCode Optional[string]          `json:"country_code,omitzero" yaml:"country_code,omitempty"`
	City        Optional[string]          `json:"city,omitzero"         yaml:"city,omitempty"`
	Website     Optional[string]          `json:"website,omitzero"      yaml:"website,omitempty"`
	Intraday    Optional[[]IntervalPrice] `json:"intraday,omitzero"     yaml:"intraday,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ExchangeIntraday) UnmarshalJSON(data []byte) error {
	type plain ExchangeIntraday

	err := decodeObject(data, (*plain)(e), &e.Additional)
	if err != nil {
		return fmt.Errorf("decoding exchange intraday: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e ExchangeIntraday) MarshalJSON() ([]byte, error) {
	type plain ExchangeIntraday

	data, err := encodeObject(plain(e), e.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding exchange intraday: %w", err)
	}

	return data, nil
}

// ExchangeTickers is an exchange together with its listed tickers.
type ExchangeTickers struct {
	Name        Optional[string]   `json:"name,omitzero"         yaml:"name,omitempty"`
	Acronym     Optional[string]   `json:"acronym,omitzero"      yaml:"acronym,omitempty"`
	MIC         Optional[string]   `json:"mic,omitzero"          yaml:"mic,omitempty"`
	Country     Optional[string]   `json:"country,omitzero"      yaml:"country,omitempty"`
	CountryCode Optional[string]   `json:"country_code,omitzero" yaml:"country_code,omitempty"`
	City        Optional[string]   `json:"city,omitzero"         yaml:"city,omitempty"`
	Website     Optional[string]   `json:"website,omitzero"      yaml:"website,omitempty"`
	Tickers     Optional[[]Ticker] `json:"tickers,omitzero"      yaml:"tickers,omitempty"`

	Additional AdditionalProperties `json:"-" yaml:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ExchangeTickers) UnmarshalJSON(data []byte) error {
	type plain ExchangeTickers

	err := decodeObject(data, (*plain)(e), &e.Additional)
	if err != nil {
		return fmt.Errorf("decoding exchange tickers: %w", err)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e ExchangeTickers) MarshalJSON() ([]byte, error) {
	type plain ExchangeTickers

	data, err := encodeObject(plain(e), e.Additional)
	if err != nil {
		return nil, fmt.Errorf("encoding exchange tickers: %w", err)
	}

	return data, nil
}
