package chash_test

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/theflywheel/chash"
)

func TestInvalidOptions(t *testing.T) {
	testCases := []struct {
		name string
		opts []chash.Option
		want []error
	}{
		{"Zero_Capacity", []chash.Option{chash.WithCapacity(0)}, []error{chash.ErrInvalidCapacity}},
		{"Negative_Capacity", []chash.Option{chash.WithCapacity(-5)}, []error{chash.ErrInvalidCapacity}},
		{"Huge_Capacity", []chash.Option{chash.WithCapacity(chash.MaxCapacity + 1)}, []error{chash.ErrCapacityTooLarge}},
		{"Nil_Hash", []chash.Option{chash.WithHashFunc(nil)}, []error{chash.ErrNilHashFunc}},
		{"Everything_Wrong", []chash.Option{chash.WithCapacity(0), chash.WithHashFunc(nil)},
			[]error{chash.ErrInvalidCapacity, chash.ErrNilHashFunc}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := chash.New[int](tc.opts...)
			if err == nil {
				tbl.Close()
				t.Fatal("Expected error, got nil")
			}
			if tbl != nil {
				t.Error("New returned a table alongside an error")
			}
			for _, want := range tc.want {
				if !errors.Is(err, want) {
					t.Errorf("error %v does not wrap %v", err, want)
				}
			}

			var merr *multierror.Error
			if !errors.As(err, &merr) {
				t.Fatalf("error %T is not a multierror", err)
			}
			if len(merr.Errors) != len(tc.want) {
				t.Errorf("got %d problems, want %d: %v", len(merr.Errors), len(tc.want), merr.Errors)
			}
		})
	}
}

func TestDefaultOptionsValid(t *testing.T) {
	if err := chash.DefaultOptions().Validate(); err != nil {
		t.Fatalf("DefaultOptions invalid: %v", err)
	}

	tbl, err := chash.New[int]()
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	defer tbl.Close()

	if tbl.Capacity() != chash.DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", tbl.Capacity(), chash.DefaultCapacity)
	}
}

func TestLifecycleLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tbl, err := chash.New[int](chash.WithCapacity(8), chash.WithLogger(logger))
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	created := hook.LastEntry()
	if created == nil || created.Message != "table created" {
		t.Fatalf("missing creation log, got %v", created)
	}
	if created.Data["capacity"] != 8 {
		t.Errorf("capacity field = %v, want 8", created.Data["capacity"])
	}

	tbl.Insert("a", 1)
	tbl.Insert("b", 2)
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	closed := hook.LastEntry()
	if closed == nil || closed.Message != "table closed" {
		t.Fatalf("missing close log, got %v", closed)
	}
	if closed.Data["released"] != 2 {
		t.Errorf("released field = %v, want 2", closed.Data["released"])
	}
	if len(hook.AllEntries()) != 2 {
		t.Errorf("got %d log entries, want 2", len(hook.AllEntries()))
	}
}
