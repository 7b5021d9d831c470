package marketstack

// Query parameter names shared by the endpoints.
const (
	ParamAccessKey = "access_key"
	ParamSymbols   = "symbols"
	ParamExchange  = "exchange"
	ParamSort      = "sort"
	ParamInterval  = "interval"
	ParamDateFrom  = "date_from"
	ParamDateTo    = "date_to"
	ParamLimit     = "limit"
	ParamOffset    = "offset"
	ParamSearch    = "search"
)

// Dates are passed through verbatim. The API accepts YYYY-MM-DD,
// "YYYY-MM-DD HH:MM:SS" and ISO-8601 with an offset.

// PageParams selects a page of a list endpoint.
type PageParams struct {
	Limit  Optional[int]
	Offset Optional[int]
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *PageParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	return p.apply(q)
}

func (p *PageParams) apply(q *Query) *Query {
	Param(q, ParamLimit, p.Limit)
	Param(q, ParamOffset, p.Offset)

	return q
}

// DateRange bounds a historical query.
type DateRange struct {
	DateFrom Optional[string]
	DateTo   Optional[string]
}

func (d *DateRange) apply(q *Query) *Query {
	Param(q, ParamDateFrom, d.DateFrom)
	Param(q, ParamDateTo, d.DateTo)

	return q
}

// EodParams filters /eod and /eod/{date}.
type EodParams struct {
	Symbols  Optional[string]
	Exchange Optional[string]
	Sort     Optional[Sort]
	DateRange
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *EodParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamExchange, p.Exchange)
	Param(q, ParamSort, p.Sort)
	p.DateRange.apply(q)

	return p.PageParams.apply(q)
}

// EodLatestParams filters /eod/latest.
type EodLatestParams struct {
	Symbols  Optional[string]
	Exchange Optional[string]
	Sort     Optional[Sort]
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *EodLatestParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamExchange, p.Exchange)
	Param(q, ParamSort, p.Sort)

	return p.PageParams.apply(q)
}

// IntradayParams filters /intraday and /intraday/{date}.
type IntradayParams struct {
	Symbols  Optional[string]
	Exchange Optional[string]
	Sort     Optional[Sort]
	Interval Optional[Interval]
	DateRange
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *IntradayParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamExchange, p.Exchange)
	Param(q, ParamSort, p.Sort)
	Param(q, ParamInterval, p.Interval)
	p.DateRange.apply(q)

	return p.PageParams.apply(q)
}

// IntradayLatestParams filters /intraday/latest.
type IntradayLatestParams struct {
	Symbols  Optional[string]
	Exchange Optional[string]
	Sort     Optional[Sort]
	Interval Optional[Interval]
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *IntradayLatestParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamExchange, p.Exchange)
	Param(q, ParamSort, p.Sort)
	Param(q, ParamInterval, p.Interval)

	return p.PageParams.apply(q)
}

// ActionParams filters /splits and /dividends.
type ActionParams struct {
	Symbols Optional[string]
	Sort    Optional[Sort]
	DateRange
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *ActionParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamSort, p.Sort)
	p.DateRange.apply(q)

	return p.PageParams.apply(q)
}

// TickersParams filters /tickers.
type TickersParams struct {
	Exchange Optional[string]
	Search   Optional[string]
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *TickersParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamExchange, p.Exchange)
	Param(q, ParamSearch, p.Search)

	return p.PageParams.apply(q)
}

// TickerEodParams filters /tickers/{symbol}/eod.
type TickerEodParams struct {
	Exchange Optional[string]
	Sort     Optional[Sort]
	DateRange
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *TickerEodParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamExchange, p.Exchange)
	Param(q, ParamSort, p.Sort)
	p.DateRange.apply(q)

	return p.PageParams.apply(q)
}

// TickerIntradayParams filters /tickers/{symbol}/intraday.
type TickerIntradayParams struct {
	Exchange Optional[string]
	Sort     Optional[Sort]
	Interval Optional[Interval]
	DateRange
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *TickerIntradayParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamExchange, p.Exchange)
	Param(q, ParamSort, p.Sort)
	Param(q, ParamInterval, p.Interval)
	p.DateRange.apply(q)

	return p.PageParams.apply(q)
}

// TickerPriceParams filters the single-price ticker endpoints
// (latest or by date, end-of-day or intraday).
type TickerPriceParams struct {
	Exchange Optional[string]
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *TickerPriceParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	return Param(q, ParamExchange, p.Exchange)
}

// TickerActionParams filters /tickers/{symbol}/splits and
// /tickers/{symbol}/dividends. Sort also accepts raw strings. These
// endpoints do not page.
type TickerActionParams struct {
	Sort Optional[Sort]
	DateRange
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *TickerActionParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSort, p.Sort)

	return p.DateRange.apply(q)
}

// SearchParams filters /exchanges and /exchanges/{mic}/tickers.
type SearchParams struct {
	Search Optional[string]
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *SearchParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSearch, p.Search)

	return p.PageParams.apply(q)
}

// ExchangeEodParams filters /exchanges/{mic}/eod.
type ExchangeEodParams struct {
	Symbols Optional[string]
	Sort    Optional[Sort]
	DateRange
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *ExchangeEodParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamSort, p.Sort)
	p.DateRange.apply(q)

	return p.PageParams.apply(q)
}

// ExchangeEodLatestParams filters /exchanges/{mic}/eod/latest and
// /exchanges/{mic}/eod/{date}.
type ExchangeEodLatestParams struct {
	Symbols Optional[string]
	Sort    Optional[Sort]
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *ExchangeEodLatestParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamSort, p.Sort)

	return p.PageParams.apply(q)
}

// ExchangeIntradayParams filters /exchanges/{mic}/intraday.
type ExchangeIntradayParams struct {
	Symbols  Optional[string]
	Sort     Optional[Sort]
	Interval Optional[Interval]
	DateRange
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *ExchangeIntradayParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamSort, p.Sort)
	Param(q, ParamInterval, p.Interval)
	p.DateRange.apply(q)

	return p.PageParams.apply(q)
}

// ExchangeIntradayLatestParams filters /exchanges/{mic}/intraday/latest.
type ExchangeIntradayLatestParams struct {
	Symbols  Optional[string]
	Sort     Optional[Sort]
	Interval Optional[Interval]
	PageParams
}

// Query renders the parameters. A nil receiver yields an empty query.
func (p *ExchangeIntradayLatestParams) Query() *Query {
	q := NewQuery()
	if p == nil {
		return q
	}

	Param(q, ParamSymbols, p.Symbols)
	Param(q, ParamSort, p.Sort)
	Param(q, ParamInterval, p.Interval)

	return p.PageParams.apply(q)
}
