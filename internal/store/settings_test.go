package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/internal/store"
	"github.com/khimalex/shoedryer/internal/store/migrations"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
)

func TestStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Store Suite")
}

var _ = Describe("SettingsStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		// Given an empty settings store
		// When we try to get the settings
		// Then it should return a ResourceNotFoundError
		It("should return ResourceNotFoundError when no settings exist", func() {
			// Act
			_, err := s.Settings().Get(ctx)

			// Assert
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given saved settings in the store
		// When we retrieve the settings
		// Then it should return the saved worker count
		It("should return saved settings", func() {
			// Arrange
			err := s.Settings().Save(ctx, &models.PoolSettings{Workers: 6})
			Expect(err).NotTo(HaveOccurred())

			// Act
			retrieved, err := s.Settings().Get(ctx)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Workers).To(Equal(6))
			Expect(retrieved.UpdatedAt).NotTo(BeZero())
		})
	})

	Context("Save", func() {
		// Given existing settings in the store
		// When we save new settings
		// Then it should update the existing record (upsert)
		It("should upsert existing settings", func() {
			// Arrange
			err := s.Settings().Save(ctx, &models.PoolSettings{Workers: 2})
			Expect(err).NotTo(HaveOccurred())

			// Act
			err = s.Settings().Save(ctx, &models.PoolSettings{Workers: 0})
			Expect(err).NotTo(HaveOccurred())

			// Assert
			retrieved, err := s.Settings().Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Workers).To(BeZero())
		})
	})

	Context("Concurrent writes", func() {
		// Given multiple goroutines writing the settings
		// When all goroutines save simultaneously
		// Then all writes should succeed and the final value should be one of the written values
		It("should handle concurrent writes from multiple goroutines", func() {
			const numGoroutines = 20
			var wg sync.WaitGroup
			errs := make(chan error, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					if err := s.Settings().Save(ctx, &models.PoolSettings{Workers: idx}); err != nil {
						errs <- fmt.Errorf("goroutine %d: %w", idx, err)
					}
				}(i)
			}

			wg.Wait()
			close(errs)

			var all []error
			for err := range errs {
				all = append(all, err)
			}
			Expect(all).To(BeEmpty(), "Expected no errors from concurrent writes, got: %v", all)

			retrieved, err := s.Settings().Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Workers).To(BeNumerically("<", numGoroutines))
		})
	})
})
