package db_test

import (
	"context"
	"errors"

	"loopdrop/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryDB", func() {
	var (
		memDB *db.MemoryDB
		ctx   context.Context
	)

	BeforeEach(func() {
		memDB = db.NewMemoryDB()
		ctx = context.Background()
	})

	get := func(key string) ([]byte, error) {
		var value []byte
		err := memDB.View(ctx, func(txn db.Txn) error {
			var err error
			value, err = txn.Get(key)
			return err
		})
		return value, err
	}

	It("returns ErrNotFound for a missing key", func() {
		_, err := get("missing")
		Expect(err).To(MatchError(db.ErrNotFound))
	})

	It("makes committed writes visible", func() {
		err := memDB.Update(ctx, func(txn db.Txn) error {
			return txn.Put("a", []byte("1"))
		})
		Expect(err).NotTo(HaveOccurred())

		value, err := get("a")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte("1")))
	})

	It("discards every write of a failed update", func() {
		Expect(memDB.Update(ctx, func(txn db.Txn) error {
			return txn.Put("a", []byte("1"))
		})).To(Succeed())

		fakeErr := errors.New("fake error")
		err := memDB.Update(ctx, func(txn db.Txn) error {
			Expect(txn.Put("a", []byte("2"))).To(Succeed())
			Expect(txn.Put("b", []byte("3"))).To(Succeed())
			Expect(txn.Delete("a")).To(Succeed())
			return fakeErr
		})
		Expect(err).To(MatchError(fakeErr))

		value, err := get("a")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte("1")))

		_, err = get("b")
		Expect(err).To(MatchError(db.ErrNotFound))
	})

	It("sees its own staged writes", func() {
		err := memDB.Update(ctx, func(txn db.Txn) error {
			Expect(txn.Put("a", []byte("1"))).To(Succeed())
			value, err := txn.Get("a")
			Expect(value).To(Equal([]byte("1")))
			return err
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("scans a prefix in key order", func() {
		Expect(memDB.Update(ctx, func(txn db.Txn) error {
			for _, k := range []string{"p/2", "p/1", "q/1", "p/3", "o/9"} {
				if err := txn.Put(k, []byte(k)); err != nil {
					return err
				}
			}
			return nil
		})).To(Succeed())

		var keys []string
		err := memDB.View(ctx, func(txn db.Txn) error {
			return txn.Scan("p/", func(key string, _ []byte) error {
				keys = append(keys, key)
				return nil
			})
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(keys).To(Equal([]string{"p/1", "p/2", "p/3"}))
	})

	It("stops scanning when the callback fails", func() {
		Expect(memDB.Update(ctx, func(txn db.Txn) error {
			Expect(txn.Put("p/1", nil)).To(Succeed())
			return txn.Put("p/2", nil)
		})).To(Succeed())

		calls := 0
		stop := errors.New("stop")
		err := memDB.View(ctx, func(txn db.Txn) error {
			return txn.Scan("p/", func(string, []byte) error {
				calls++
				return stop
			})
		})
		Expect(err).To(MatchError(stop))
		Expect(calls).To(Equal(1))
	})

	It("rejects writes in a view", func() {
		err := memDB.View(ctx, func(txn db.Txn) error {
			return txn.Put("a", nil)
		})
		Expect(err).To(MatchError(db.ErrReadOnly))
	})

	It("refuses to start with a cancelled context", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := memDB.Update(cctx, func(db.Txn) error { return nil })
		Expect(err).To(MatchError(context.Canceled))
	})
})
