package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findhelp-service/internal/domain"
)

func TestParseLedger(t *testing.T) {
	t.Run("empty value yields empty ledger", func(t *testing.T) {
		ledger := domain.ParseLedger(nil)
		assert.NotNil(t, ledger)
		assert.Empty(t, ledger)
	})

	t.Run("corrupt value yields empty ledger", func(t *testing.T) {
		ledger := domain.ParseLedger([]byte("{not json"))
		assert.NotNil(t, ledger)
		assert.Empty(t, ledger)
	})

	t.Run("round trip preserves records", func(t *testing.T) {
		original := domain.Ledger{}
		pin := domain.PinSnapshot{ID: "p1", Name: "Place"}
		original.RecordClick("dev-1", pin, 1000)
		original.RecordClick("dev-1", pin, 2000)

		data, err := json.Marshal(original)
		require.NoError(t, err)

		parsed := domain.ParseLedger(data)
		rec := parsed.Record("dev-1", "p1")
		require.NotNil(t, rec)
		assert.Equal(t, 2, rec.ClickCount)
		assert.Equal(t, []int64{1000, 2000}, rec.Timestamps)
	})
}

func TestLedgerRecordClick(t *testing.T) {
	ledger := domain.Ledger{}
	pin := domain.PinSnapshot{
		ID:      "onpoint-east-harlem",
		Name:    "OnPoint NYC - East Harlem",
		Address: "104-106 E 126th St",
		Type:    "harm-reduction",
	}

	t.Run("first click creates the record", func(t *testing.T) {
		rec := ledger.RecordClick("dev-1", pin, 100)

		assert.Equal(t, 1, rec.ClickCount)
		assert.Equal(t, []int64{100}, rec.Timestamps)
		assert.Equal(t, pin, rec.PinInfo)
	})

	t.Run("repeat clicks increment and append", func(t *testing.T) {
		ledger.RecordClick("dev-1", pin, 200)
		rec := ledger.RecordClick("dev-1", pin, 300)

		assert.Equal(t, 3, rec.ClickCount)
		assert.Equal(t, []int64{100, 200, 300}, rec.Timestamps)
	})

	t.Run("count always matches timestamps", func(t *testing.T) {
		for _, byPlace := range ledger {
			for _, rec := range byPlace {
				assert.Equal(t, rec.ClickCount, len(rec.Timestamps))
			}
		}
	})

	t.Run("devices are isolated", func(t *testing.T) {
		rec := ledger.RecordClick("dev-2", pin, 400)

		assert.Equal(t, 1, rec.ClickCount)
		assert.Equal(t, 3, ledger.Record("dev-1", pin.ID).ClickCount)
	})

	t.Run("missing record returns nil", func(t *testing.T) {
		assert.Nil(t, ledger.Record("dev-1", "nope"))
		assert.Nil(t, ledger.Record("nope", pin.ID))
	})
}
