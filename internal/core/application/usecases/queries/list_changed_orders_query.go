package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrListChangedOrdersQueryIsNotConstructed = errors.New(
	"ListChangedOrdersQuery must be created via NewListChangedOrdersQuery constructor",
)

// Timeframe restricts a listing to orders created within a calendar window.
type Timeframe string

const (
	TimeframeAll   Timeframe = ""
	TimeframeToday Timeframe = "today"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)

// Validate checks that the timeframe is one of the supported windows.
func (tf Timeframe) Validate() error {
	switch tf {
	case TimeframeAll, TimeframeToday, TimeframeWeek, TimeframeMonth:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("timeframe",
			errors.New(string(tf)+" is not a valid timeframe"))
	}
}

// CutoffFrom resolves the window to a creation-time lower bound.
// Returns the zero time for the unbounded window.
func (tf Timeframe) CutoffFrom(now time.Time) time.Time {
	switch tf {
	case TimeframeToday:
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	case TimeframeWeek:
		return now.AddDate(0, 0, -7)
	case TimeframeMonth:
		return now.AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}

// ListChangedOrdersQuery retrieves orders whose state changed since a given
// instant, optionally narrowed to one status and a creation window. It backs
// the polling endpoint of the crew and admin boards.
//
// Example:
//
//	query, err := NewListChangedOrdersQuery(lastPoll, order.Unknown, TimeframeToday)
//	if err != nil {
//	    return fmt.Errorf("bad poll parameters: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to poll orders: %w", err)
//	}
//	fmt.Printf("%d orders changed, %d currently pending\n",
//	    len(response.Orders), response.Statistics.PendingCount)
type ListChangedOrdersQuery struct {
	since        time.Time
	statusFilter order.Status
	timeframe    Timeframe

	guard guard.ConstructorGuard
}

// NewListChangedOrdersQuery creates a polling query.
// A zero since lists everything; order.Unknown disables the status filter.
func NewListChangedOrdersQuery(
	since time.Time,
	statusFilter order.Status,
	timeframe Timeframe,
) (ListChangedOrdersQuery, error) {
	if statusFilter != order.Unknown {
		if err := statusFilter.Validate(); err != nil {
			return ListChangedOrdersQuery{}, err
		}
	}
	if err := timeframe.Validate(); err != nil {
		return ListChangedOrdersQuery{}, err
	}

	return ListChangedOrdersQuery{
		since:        since,
		statusFilter: statusFilter,
		timeframe:    timeframe,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListChangedOrdersQueryIsNotConstructed if validation fails.
func (q ListChangedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListChangedOrdersQueryIsNotConstructed)
}

// Since returns the change-time lower bound.
func (q ListChangedOrdersQuery) Since() time.Time {
	return q.since
}

// StatusFilter returns the status narrowing, order.Unknown when absent.
func (q ListChangedOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// Timeframe returns the creation window.
func (q ListChangedOrdersQuery) Timeframe() Timeframe {
	return q.timeframe
}

// OrderSnapshot is one row of the polling response: the order's current
// state plus display-ready item and contact summaries. Contact fields carry
// what the crew needs to call out or deliver the order.
type OrderSnapshot struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ItemsDisplay    string
	Total           kernel.Money
	Status          order.Status
	Preparation     order.Preparation
	EstimatedReady  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Statistics summarizes the snapshot set returned alongside it.
// Counts and revenue are derived from the same rows the caller received,
// so the board never shows numbers that disagree with its list.
type Statistics struct {
	TotalCount     int
	PendingCount   int
	PreparingCount int
	ReadyCount     int
	CompletedCount int
	CancelledCount int
	Revenue        kernel.Money
}

// ListChangedOrdersQueryResponse bundles the changed orders with their statistics.
type ListChangedOrdersQueryResponse struct {
	Orders     []OrderSnapshot
	Statistics Statistics
}

// ComputeStatistics derives the summary counters from a snapshot set.
// Revenue counts completed orders only.
func ComputeStatistics(snapshots []OrderSnapshot) Statistics {
	stats := Statistics{TotalCount: len(snapshots)}
	for _, snapshot := range snapshots {
		switch snapshot.Status {
		case order.Pending:
			stats.PendingCount++
		case order.Preparing:
			stats.PreparingCount++
		case order.Ready:
			stats.ReadyCount++
		case order.Completed:
			stats.CompletedCount++
			stats.Revenue = stats.Revenue.Add(snapshot.Total)
		case order.Cancelled:
			stats.CancelledCount++
		}
	}
	return stats
}
