// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file exports lead-volume gauges to Prometheus. The
// gauges are refreshed from aggregate queries on a fixed interval rather than
// incremented inline, so they stay correct even when rows are written by
// another process sharing the database file.
package repo

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
)

var (
	leadsTotal = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "leads_total",
		Help: "Current number of stored leads by kind.",
	}, []string{"kind"})

	contactRequestsNew = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "contact_requests_new",
		Help: "Contact requests still awaiting admin confirmation.",
	})
)

// UpdateLeadMetrics refreshes the lead gauges from the database.
func UpdateLeadMetrics(ctx context.Context, db *gorm.DB) error {
	quotations, err := CountQuotationRequests(ctx, db)
	if err != nil {
		return err
	}
	contacts, err := CountContactRequests(ctx, db, "")
	if err != nil {
		return err
	}
	pending, err := CountContactRequests(ctx, db, domain.ContactStatusNew)
	if err != nil {
		return err
	}

	leadsTotal.WithLabelValues("quotation").Set(float64(quotations))
	leadsTotal.WithLabelValues("contact").Set(float64(contacts))
	contactRequestsNew.Set(float64(pending))
	return nil
}

// StartLeadMetrics refreshes the lead gauges on the given interval until ctx
// is cancelled. An immediate refresh runs before the first tick so /metrics
// is populated right after startup. Refresh errors are logged and retried on
// the next tick.
func StartLeadMetrics(ctx context.Context, db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	refresh := func() {
		if err := UpdateLeadMetrics(ctx, db); err != nil {
			log.Warn().Err(err).Msg("lead metrics refresh failed")
		}
	}
	refresh()

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			refresh()
		}
	}
}
