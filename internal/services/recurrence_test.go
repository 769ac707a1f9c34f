package services

import (
	"errors"
	"testing"
	"time"

	"github.com/caioaraujo/grana/internal/models"
)

func TestAddMonthsClamped(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		day    string
		months int
		want   string
	}{
		{name: "plain shift", day: "2024-03-15", months: 1, want: "2024-04-15"},
		{name: "jan 31 clamps to leap feb", day: "2024-01-31", months: 1, want: "2024-02-29"},
		{name: "jan 31 clamps to short feb", day: "2023-01-31", months: 1, want: "2023-02-28"},
		{name: "jan 31 two months keeps day", day: "2024-01-31", months: 2, want: "2024-03-31"},
		{name: "oct 31 clamps to nov 30", day: "2024-10-31", months: 1, want: "2024-11-30"},
		{name: "year rollover", day: "2024-11-30", months: 3, want: "2025-02-28"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			day, err := time.Parse(models.DateLayout, testCase.day)
			if err != nil {
				t.Fatalf("parse base day: %v", err)
			}
			got := AddMonthsClamped(day, testCase.months).Format(models.DateLayout)
			if got != testCase.want {
				t.Fatalf("%s + %d months: expected %s, got %s", testCase.day, testCase.months, testCase.want, got)
			}
		})
	}
}

func TestBuildRecurringChildren(t *testing.T) {
	t.Parallel()

	location := "Mercado Central"
	months := 3
	parent := models.Expense{
		ID:               7,
		UserID:           1,
		Category:         "mercado",
		Location:         &location,
		Date:             "2024-01-31",
		Amount:           250.5,
		IsRecurring:      true,
		RecurrenceMonths: &months,
	}

	children, err := BuildRecurringChildren(parent, months)
	if err != nil {
		t.Fatalf("build children: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children for a 3 month series, got %d", len(children))
	}

	wantDates := []string{"2024-02-29", "2024-03-31"}
	for index, child := range children {
		if child.Date != wantDates[index] {
			t.Fatalf("child %d: expected date %s, got %s", index, wantDates[index], child.Date)
		}
		if child.ParentExpenseID == nil || *child.ParentExpenseID != parent.ID {
			t.Fatalf("child %d: expected parent id %d, got %v", index, parent.ID, child.ParentExpenseID)
		}
		if child.RecurrenceMonths != nil {
			t.Fatalf("child %d: expected no recurrence count, got %d", index, *child.RecurrenceMonths)
		}
		if child.Category != parent.Category || child.Amount != parent.Amount {
			t.Fatalf("child %d: expected category/amount copied from parent", index)
		}
		if !child.IsRecurring {
			t.Fatalf("child %d: expected recurring flag copied from parent", index)
		}
	}
}

func TestBuildRecurringChildrenSingleMonth(t *testing.T) {
	t.Parallel()

	parent := models.Expense{ID: 1, UserID: 1, Category: "aluguel", Date: "2024-05-10", Amount: 1200}

	children, err := BuildRecurringChildren(parent, 1)
	if err != nil {
		t.Fatalf("build children: %v", err)
	}
	if len(children) != 0 {
		t.Fatalf("expected no children for a 1 month series, got %d", len(children))
	}
}

func TestBuildRecurringChildrenInvalidDate(t *testing.T) {
	t.Parallel()

	parent := models.Expense{ID: 1, UserID: 1, Category: "aluguel", Date: "31/01/2024", Amount: 1200}

	if _, err := BuildRecurringChildren(parent, 3); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
