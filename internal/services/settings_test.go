package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khimalex/shoedryer/internal/services"
	"github.com/khimalex/shoedryer/internal/store"
	"github.com/khimalex/shoedryer/internal/store/migrations"
)

var _ = Describe("SettingsService", func() {
	var (
		ctx context.Context
		db  *sql.DB
		srv *services.SettingsService
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())

		srv = services.NewSettingsService(store.NewStore(db))
	})

	AfterEach(func() {
		db.Close()
	})

	// Given nothing was persisted
	// When we read the worker count
	// Then the fallback is returned
	It("should return the fallback when no settings exist", func() {
		workers, err := srv.Workers(ctx, 4)

		Expect(err).NotTo(HaveOccurred())
		Expect(workers).To(Equal(4))
	})

	// Given a persisted worker count
	// When we read it back
	// Then the persisted value wins over the fallback
	It("should return the persisted worker count", func() {
		// Arrange
		Expect(srv.SaveWorkers(ctx, 2)).To(Succeed())

		// Act
		workers, err := srv.Workers(ctx, 4)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(workers).To(Equal(2))
	})

	// Given a persisted zero
	// When we read it back
	// Then zero is returned rather than the fallback
	It("should keep a persisted zero", func() {
		Expect(srv.SaveWorkers(ctx, 0)).To(Succeed())

		workers, err := srv.Workers(ctx, 4)

		Expect(err).NotTo(HaveOccurred())
		Expect(workers).To(BeZero())
	})
})
