package services

import (
	"context"
	"testing"

	"siteledger/internal/testutil"
)

func TestEditSessionSave(t *testing.T) {
	t.Run("idle_save_creates", func(t *testing.T) {
		ctx := context.Background()
		ledger, _ := newTestLedger(t)
		session := NewEditSession(ledger)

		record, err := session.Save(ctx, incomeDraft(1000, "Pay"))
		testutil.AssertNoError(t, err)

		testutil.MustRecords(t, ledger.Records(), record.ID)
		if session.EditingID() != nil {
			t.Error("expected session to stay idle after create")
		}
	})

	t.Run("editing_save_updates_and_returns_to_idle", func(t *testing.T) {
		ctx := context.Background()
		ledger, _ := newTestLedger(t)
		session := NewEditSession(ledger)

		record, err := ledger.CreateRecord(ctx, incomeDraft(1000, "Pay"))
		testutil.AssertNoError(t, err)

		draft, err := session.Start(record.ID)
		testutil.AssertNoError(t, err)
		if draft.Amount != 1000 || draft.Description != "Pay" {
			t.Errorf("expected draft loaded from record, got %+v", draft)
		}

		draft.Amount = 1250
		saved, err := session.Save(ctx, draft)
		testutil.AssertNoError(t, err)

		if saved.ID != record.ID {
			t.Errorf("expected update of record %d, got new record %d", record.ID, saved.ID)
		}
		if saved.Amount != 1250 {
			t.Errorf("expected amount 1250, got %v", saved.Amount)
		}
		testutil.MustRecords(t, ledger.Records(), record.ID)

		if session.EditingID() != nil {
			t.Error("expected session idle after successful save")
		}
	})

	t.Run("failed_save_keeps_session_editing", func(t *testing.T) {
		ctx := context.Background()
		ledger, _ := newTestLedger(t)
		session := NewEditSession(ledger)

		record, err := ledger.CreateRecord(ctx, incomeDraft(1000, "Pay"))
		testutil.AssertNoError(t, err)

		draft, err := session.Start(record.ID)
		testutil.AssertNoError(t, err)

		draft.Amount = -1
		_, err = session.Save(ctx, draft)
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		id := session.EditingID()
		if id == nil || *id != record.ID {
			t.Error("expected session to keep editing after failed save")
		}
	})

	t.Run("save_after_cancel_creates", func(t *testing.T) {
		ctx := context.Background()
		ledger, _ := newTestLedger(t)
		session := NewEditSession(ledger)

		record, err := ledger.CreateRecord(ctx, incomeDraft(1000, "Pay"))
		testutil.AssertNoError(t, err)

		_, err = session.Start(record.ID)
		testutil.AssertNoError(t, err)
		session.Cancel()

		created, err := session.Save(ctx, expenseDraft(400, "Market"))
		testutil.AssertNoError(t, err)
		if created.ID == record.ID {
			t.Error("expected a fresh record after cancel, got an update")
		}
		testutil.MustRecords(t, ledger.Records(), created.ID, record.ID)
	})
}

func TestEditSessionStart(t *testing.T) {
	t.Run("unknown_id", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		session := NewEditSession(ledger)

		_, err := session.Start(12345)
		testutil.AssertAppError(t, err, "RECORD_NOT_FOUND")
		if session.EditingID() != nil {
			t.Error("expected session to stay idle after failed start")
		}
	})

	t.Run("replaces_previous_draft", func(t *testing.T) {
		ctx := context.Background()
		ledger, _ := newTestLedger(t)
		session := NewEditSession(ledger)

		first, err := ledger.CreateRecord(ctx, incomeDraft(1000, "Pay"))
		testutil.AssertNoError(t, err)
		second, err := ledger.CreateRecord(ctx, expenseDraft(400, "Market"))
		testutil.AssertNoError(t, err)

		_, err = session.Start(first.ID)
		testutil.AssertNoError(t, err)
		draft, err := session.Start(second.ID)
		testutil.AssertNoError(t, err)

		if draft.Description != "Market" {
			t.Errorf("expected draft for second record, got %+v", draft)
		}
		id := session.EditingID()
		if id == nil || *id != second.ID {
			t.Error("expected session to track the latest start")
		}
	})
}

func TestEditSessionCancel(t *testing.T) {
	t.Run("leaves_record_unchanged", func(t *testing.T) {
		ctx := context.Background()
		ledger, _ := newTestLedger(t)
		session := NewEditSession(ledger)

		record, err := ledger.CreateRecord(ctx, incomeDraft(1000, "Pay"))
		testutil.AssertNoError(t, err)

		_, err = session.Start(record.ID)
		testutil.AssertNoError(t, err)
		session.Cancel()

		got, err := ledger.GetRecordByID(record.ID)
		testutil.AssertNoError(t, err)
		if got.Amount != 1000 {
			t.Errorf("expected record untouched after cancel, got %+v", got)
		}
	})

	t.Run("idle_cancel_is_noop", func(t *testing.T) {
		ledger, _ := newTestLedger(t)
		session := NewEditSession(ledger)
		session.Cancel()
		if session.EditingID() != nil {
			t.Error("expected session idle")
		}
	})
}
