package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/medigo-care/go-leads-backend/internal/domain"
)

func newLeadsDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("leads_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateQuotationRequest_PersistsAndSetsFields(t *testing.T) {
	db := newLeadsDB(t, &domain.QuotationRequest{})

	start := time.Now().UTC().Add(-time.Minute)
	q := &domain.QuotationRequest{
		Name:              "Jane",
		Email:             "jane@example.com",
		MainConcern:       domain.StringList{"wrinkles-sagging"},
		DesiredResults:    domain.StringList{"lifting-tightening"},
		BudgetRange:       "5000-10000",
		PreferredDuration: "3-days",
	}
	if err := CreateQuotationRequest(context.Background(), db, q); err != nil {
		t.Fatalf("CreateQuotationRequest: %v", err)
	}
	if q.ID == 0 {
		t.Fatalf("expected assigned ID, got 0")
	}
	if q.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset/really old: %v", q.CreatedAt)
	}

	// round-trip, including the JSON-serialized list column
	got, err := GetQuotationRequest(context.Background(), db, q.ID)
	if err != nil {
		t.Fatalf("GetQuotationRequest: %v", err)
	}
	if got.Email != "jane@example.com" || len(got.DesiredResults) != 1 || got.DesiredResults[0] != "lifting-tightening" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestGetQuotationRequest_Missing_ReturnsNotFound(t *testing.T) {
	db := newLeadsDB(t, &domain.QuotationRequest{})
	rec, err := GetQuotationRequest(context.Background(), db, 42)
	if rec != nil || !IsNotFound(err) {
		t.Fatalf("expected (nil, ErrNotFound), got (%v, %v)", rec, err)
	}
}

func TestListQuotationRequests_NewestFirstAndLimit(t *testing.T) {
	db := newLeadsDB(t, &domain.QuotationRequest{})

	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, ts := range []time.Time{t1, t1.Add(time.Hour), t1.Add(2 * time.Hour)} {
		q := domain.QuotationRequest{
			Name:        fmt.Sprintf("p%d", i),
			Email:       fmt.Sprintf("p%d@example.com", i),
			MainConcern: domain.StringList{"pores-texture"},
			CreatedAt:   ts,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	all, err := ListQuotationRequests(context.Background(), db, 0)
	if err != nil {
		t.Fatalf("ListQuotationRequests: %v", err)
	}
	if len(all) != 3 || all[0].Name != "p2" || all[2].Name != "p0" {
		t.Fatalf("unexpected order: %+v", all)
	}

	top, err := ListQuotationRequests(context.Background(), db, 2)
	if err != nil {
		t.Fatalf("ListQuotationRequests(limit): %v", err)
	}
	if len(top) != 2 || top[0].Name != "p2" {
		t.Fatalf("unexpected limited result: %+v", top)
	}
}

func TestUpdateContactRequestStatus_TransitionsAndIdempotence(t *testing.T) {
	db := newLeadsDB(t, &domain.ContactRequest{})

	c := &domain.ContactRequest{
		FirstName:       "Li",
		LastName:        "Wei",
		Email:           "li@example.com",
		ServiceInterest: "hifu",
		Status:          domain.ContactStatusNew,
	}
	if err := CreateContactRequest(context.Background(), db, c); err != nil {
		t.Fatalf("CreateContactRequest: %v", err)
	}

	got, err := UpdateContactRequestStatus(context.Background(), db, c.ID, domain.ContactStatusSent)
	if err != nil {
		t.Fatalf("UpdateContactRequestStatus: %v", err)
	}
	if got.Status != domain.ContactStatusSent {
		t.Fatalf("status not updated: %+v", got)
	}

	// Confirming twice succeeds and leaves the record unchanged.
	again, err := UpdateContactRequestStatus(context.Background(), db, c.ID, domain.ContactStatusSent)
	if err != nil {
		t.Fatalf("repeat update: %v", err)
	}
	if again.Status != domain.ContactStatusSent {
		t.Fatalf("unexpected record after repeat update: %+v", again)
	}

	if _, err := UpdateContactRequestStatus(context.Background(), db, 999, domain.ContactStatusSent); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestCountContactRequests_StatusFilter(t *testing.T) {
	db := newLeadsDB(t, &domain.ContactRequest{})

	for i, status := range []string{domain.ContactStatusNew, domain.ContactStatusNew, domain.ContactStatusSent} {
		c := domain.ContactRequest{
			FirstName:       fmt.Sprintf("f%d", i),
			LastName:        "x",
			Email:           fmt.Sprintf("c%d@example.com", i),
			ServiceInterest: "botox",
			Status:          status,
		}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	total, err := CountContactRequests(context.Background(), db, "")
	if err != nil || total != 3 {
		t.Fatalf("total = %d, err = %v", total, err)
	}
	pending, err := CountContactRequests(context.Background(), db, domain.ContactStatusNew)
	if err != nil || pending != 2 {
		t.Fatalf("pending = %d, err = %v", pending, err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := newLeadsDB(t, &domain.Session{})
	now := time.Now().UTC()

	sess, err := CreateSession(context.Background(), db, time.Hour)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sess.ID == "" || !sess.IsAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}

	got, err := GetSession(context.Background(), db, sess.ID, now)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.ID != sess.ID {
		t.Fatalf("session mismatch: %+v", got)
	}

	if err := DeleteSession(context.Background(), db, sess.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := GetSession(context.Background(), db, sess.ID, now); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op.
	if err := DeleteSession(context.Background(), db, sess.ID); err != nil {
		t.Fatalf("repeat DeleteSession: %v", err)
	}
}

func TestGetSession_Expired_LazilyDeleted(t *testing.T) {
	db := newLeadsDB(t, &domain.Session{})
	now := time.Now().UTC()

	stale := domain.Session{
		ID:        "stale",
		IsAdmin:   true,
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := GetSession(context.Background(), db, "stale", now); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for expired session, got %v", err)
	}

	var n int64
	db.Model(&domain.Session{}).Where("id = ?", "stale").Count(&n)
	if n != 0 {
		t.Fatalf("expired row should have been deleted, found %d", n)
	}
}

func TestPurgeExpiredSessions(t *testing.T) {
	db := newLeadsDB(t, &domain.Session{})
	now := time.Now().UTC()

	rows := []domain.Session{
		{ID: "live", IsAdmin: true, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
		{ID: "dead1", IsAdmin: true, CreatedAt: now.Add(-3 * time.Hour), ExpiresAt: now.Add(-2 * time.Hour)},
		{ID: "dead2", IsAdmin: true, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Minute)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	n, err := PurgeExpiredSessions(context.Background(), db, now)
	if err != nil {
		t.Fatalf("PurgeExpiredSessions: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 purged, got %d", n)
	}
	if _, err := GetSession(context.Background(), db, "live", now); err != nil {
		t.Fatalf("live session should survive purge: %v", err)
	}
}

func TestSeedCatalog_Idempotent_PreservesEdits(t *testing.T) {
	db := newLeadsDB(t, &domain.CatalogItem{})

	items := []domain.CatalogItem{
		{ID: "ulthera-300", Name: "Ulthera 300 shots", Category: "HIFU", BasePrice: 1300000, Commission: 20, FinalPrice: 1560000},
		{ID: "pdt", Name: "PDT", Category: "Laser", BasePrice: 150000, Commission: 20, FinalPrice: 180000},
	}
	if err := SeedCatalog(context.Background(), db, items); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}

	// Simulate an admin edit, then re-seed; the edit must survive.
	newBase := 1400000
	if _, err := UpdateCatalogItem(context.Background(), db, "ulthera-300", &newBase, nil); err != nil {
		t.Fatalf("UpdateCatalogItem: %v", err)
	}
	if err := SeedCatalog(context.Background(), db, items); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	got, err := GetCatalogItem(context.Background(), db, "ulthera-300")
	if err != nil {
		t.Fatalf("GetCatalogItem: %v", err)
	}
	if got.BasePrice != 1400000 || got.FinalPrice != 1680000 {
		t.Fatalf("edit clobbered by re-seed: %+v", got)
	}

	all, err := ListCatalog(context.Background(), db)
	if err != nil {
		t.Fatalf("ListCatalog: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 items, got %d", len(all))
	}
}

func TestUpdateCatalogItem_CommissionAndErrors(t *testing.T) {
	db := newLeadsDB(t, &domain.CatalogItem{})

	seed := []domain.CatalogItem{
		{ID: "imported-filler", Name: "Imported filler", Category: "Filler", BasePrice: 400000, Commission: 20, FinalPrice: 480000},
	}
	if err := SeedCatalog(context.Background(), db, seed); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}

	comm := 10.0
	got, err := UpdateCatalogItem(context.Background(), db, "imported-filler", nil, &comm)
	if err != nil {
		t.Fatalf("UpdateCatalogItem: %v", err)
	}
	if got.Commission != 10 || got.FinalPrice != 440000 {
		t.Fatalf("final price not recomputed: %+v", got)
	}

	if _, err := UpdateCatalogItem(context.Background(), db, "nope", nil, &comm); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateLeadMetrics(t *testing.T) {
	db := newLeadsDB(t, &domain.QuotationRequest{}, &domain.ContactRequest{})

	q := &domain.QuotationRequest{Name: "a", Email: "a@example.com", MainConcern: domain.StringList{"redness"}}
	if err := CreateQuotationRequest(context.Background(), db, q); err != nil {
		t.Fatalf("seed quotation: %v", err)
	}
	c := &domain.ContactRequest{FirstName: "b", LastName: "c", Email: "b@example.com", ServiceInterest: "laser", Status: domain.ContactStatusNew}
	if err := CreateContactRequest(context.Background(), db, c); err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	if err := UpdateLeadMetrics(context.Background(), db); err != nil {
		t.Fatalf("UpdateLeadMetrics: %v", err)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "no-such-dir", "x.db"))
	if err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestOpenSQLiteAndAutoMigrate(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "leads.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	if !db.Migrator().HasTable(&domain.Session{}) {
		t.Fatalf("sessions table missing after migrate")
	}
}
