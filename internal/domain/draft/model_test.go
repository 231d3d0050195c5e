package draft

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d := New()

	assert.True(t, strings.HasPrefix(d.ID, "draft_"))
	assert.True(t, strings.HasPrefix(d.Reference, "DR-"))
	require.Len(t, d.Items, 1)
	assert.Equal(t, "1", d.Items[0].Quantity.String())
	assert.Equal(t, "0", d.Items[0].Rate.String())
	assert.Equal(t, "0.00", d.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", d.Totals.Total.StringFixed(2))
	assert.Equal(t, "0.1", d.TaxRate.String())
}

func TestDraftAddItem(t *testing.T) {
	d := New()
	d = d.AddItem()
	d = d.AddItem()

	assert.Len(t, d.Items, 3)
	for _, li := range d.Items {
		assert.Equal(t, "1", li.Quantity.String())
		assert.Equal(t, "0.00", li.Amount.StringFixed(2))
	}
}

func TestDraftRemoveItem(t *testing.T) {
	t.Run("removes_item_at_index", func(t *testing.T) {
		d := New()
		d = d.AddItem()
		d, err := d.SetDescription(0, "first")
		require.NoError(t, err)
		d, err = d.SetDescription(1, "second")
		require.NoError(t, err)

		d, err = d.RemoveItem(0)
		require.NoError(t, err)
		require.Len(t, d.Items, 1)
		assert.Equal(t, "second", d.Items[0].Description)
	})

	t.Run("last_item_is_a_noop", func(t *testing.T) {
		d := New()
		d, err := d.SetDescription(0, "keep me")
		require.NoError(t, err)

		d, err = d.RemoveItem(0)
		require.NoError(t, err)
		require.Len(t, d.Items, 1)
		assert.Equal(t, "keep me", d.Items[0].Description)
	})

	t.Run("out_of_range", func(t *testing.T) {
		d := New()
		_, err := d.RemoveItem(5)
		assert.ErrorIs(t, err, ErrItemIndexOutOfRange)
		_, err = d.RemoveItem(-1)
		assert.ErrorIs(t, err, ErrItemIndexOutOfRange)
	})

	t.Run("totals_follow_removal", func(t *testing.T) {
		d := New()
		d = d.AddItem()
		d, err := d.SetRate(0, "19.99")
		require.NoError(t, err)
		d, err = d.SetQuantity(0, "3")
		require.NoError(t, err)
		d, err = d.SetRate(1, "10.00")
		require.NoError(t, err)
		d, err = d.SetQuantity(1, "2")
		require.NoError(t, err)
		assert.Equal(t, "79.97", d.Totals.Subtotal.StringFixed(2))

		d, err = d.RemoveItem(1)
		require.NoError(t, err)
		assert.Equal(t, "59.97", d.Totals.Subtotal.StringFixed(2))
		assert.Equal(t, "6.00", d.Totals.Tax.StringFixed(2))
		assert.Equal(t, "65.97", d.Totals.Total.StringFixed(2))
	})
}

func TestDraftSetQuantityAndRate(t *testing.T) {
	t.Run("amount_tracks_every_edit", func(t *testing.T) {
		d := New()

		d, err := d.SetRate(0, "19.99")
		require.NoError(t, err)
		assert.Equal(t, "19.99", d.Items[0].Amount.StringFixed(2))

		d, err = d.SetQuantity(0, "3")
		require.NoError(t, err)
		assert.Equal(t, "59.97", d.Items[0].Amount.StringFixed(2))

		d, err = d.SetQuantity(0, "2")
		require.NoError(t, err)
		assert.Equal(t, "39.98", d.Items[0].Amount.StringFixed(2))
	})

	t.Run("coerces_bad_input_to_zero", func(t *testing.T) {
		d := New()
		d, err := d.SetRate(0, "19.99")
		require.NoError(t, err)

		d, err = d.SetQuantity(0, "abc")
		require.NoError(t, err)
		assert.Equal(t, "0", d.Items[0].Quantity.String())
		assert.Equal(t, "0.00", d.Items[0].Amount.StringFixed(2))
		assert.Equal(t, "0.00", d.Totals.Total.StringFixed(2))

		d, err = d.SetRate(0, "-5")
		require.NoError(t, err)
		assert.Equal(t, "0", d.Items[0].Rate.String())
	})

	t.Run("out_of_range", func(t *testing.T) {
		d := New()
		_, err := d.SetQuantity(3, "1")
		assert.ErrorIs(t, err, ErrItemIndexOutOfRange)
		_, err = d.SetRate(3, "1")
		assert.ErrorIs(t, err, ErrItemIndexOutOfRange)
	})
}

func TestDraftEndToEndTotals(t *testing.T) {
	d := New()
	d = d.AddItem()

	d, err := d.SetDescription(0, "Consulting")
	require.NoError(t, err)
	d, err = d.SetQuantity(0, "3")
	require.NoError(t, err)
	d, err = d.SetRate(0, "19.99")
	require.NoError(t, err)

	d, err = d.SetDescription(1, "Materials")
	require.NoError(t, err)
	d, err = d.SetQuantity(1, "2")
	require.NoError(t, err)
	d, err = d.SetRate(1, "10.00")
	require.NoError(t, err)

	assert.Equal(t, "59.97", d.Items[0].Amount.StringFixed(2))
	assert.Equal(t, "20.00", d.Items[1].Amount.StringFixed(2))
	assert.Equal(t, "79.97", d.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "8.00", d.Totals.Tax.StringFixed(2))
	assert.Equal(t, "87.97", d.Totals.Total.StringFixed(2))
}

func TestDraftApplyService(t *testing.T) {
	t.Run("replaces_items_with_service_line", func(t *testing.T) {
		d := New()
		d = d.AddItem()
		d, err := d.SetDescription(0, "manual entry")
		require.NoError(t, err)
		d, err = d.SetRate(0, "99.99")
		require.NoError(t, err)

		d = d.ApplyService("sr_01", "Deep Clean", decimal.RequireFromString("250"))

		require.Len(t, d.Items, 1)
		assert.Equal(t, "sr_01", d.ServiceRequestID)
		assert.Equal(t, "Deep Clean", d.Items[0].Description)
		assert.Equal(t, "1", d.Items[0].Quantity.String())
		assert.Equal(t, "250.00", d.Items[0].Amount.StringFixed(2))
		assert.Equal(t, "250.00", d.Totals.Subtotal.StringFixed(2))
		assert.Equal(t, "25.00", d.Totals.Tax.StringFixed(2))
		assert.Equal(t, "275.00", d.Totals.Total.StringFixed(2))
	})

	t.Run("reapplying_same_service_is_idempotent", func(t *testing.T) {
		d := New()
		price := decimal.RequireFromString("250")

		d = d.ApplyService("sr_01", "Deep Clean", price)
		first := d
		d = d.ApplyService("sr_01", "Deep Clean", price)

		assert.Equal(t, first.ServiceRequestID, d.ServiceRequestID)
		require.Len(t, d.Items, 1)
		assert.Equal(t, first.Items[0].Description, d.Items[0].Description)
		assert.True(t, first.Items[0].Amount.Equal(d.Items[0].Amount))
		assert.True(t, first.Totals.Total.Equal(d.Totals.Total))
	})

	t.Run("negative_base_price_coerces_to_zero", func(t *testing.T) {
		d := New()
		d = d.ApplyService("sr_02", "Broken Price", decimal.RequireFromString("-10"))

		assert.Equal(t, "0", d.Items[0].Rate.String())
		assert.Equal(t, "0.00", d.Totals.Total.StringFixed(2))
	})
}

func TestDraftSetHeader(t *testing.T) {
	d := New()
	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	terms := "NET30"
	currency := "usd"

	d = d.SetHeader(&due, &terms, &currency, nil)

	require.NotNil(t, d.DueDate)
	assert.True(t, due.Equal(*d.DueDate))
	assert.Equal(t, "NET30", d.PaymentTerms)
	assert.Equal(t, "usd", d.Currency)
	assert.Empty(t, d.Notes)

	// nil fields leave prior values untouched
	notes := "rush job"
	d = d.SetHeader(nil, nil, nil, &notes)
	assert.Equal(t, "NET30", d.PaymentTerms)
	assert.Equal(t, "rush job", d.Notes)
}

func TestDraftOperationsDoNotMutateReceiver(t *testing.T) {
	d := New()
	d, err := d.SetRate(0, "10")
	require.NoError(t, err)

	before := d.Items[0].Rate.String()
	_, err = d.SetRate(0, "99")
	require.NoError(t, err)
	assert.Equal(t, before, d.Items[0].Rate.String())

	_ = d.AddItem()
	assert.Len(t, d.Items, 1)
}
