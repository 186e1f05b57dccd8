package menu

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedCatalog(t *testing.T) {
	m := New()

	items := m.Items()
	require.Len(t, items, 8)

	wantIDs := []string{"Pi01", "Pi02", "Pi03", "Pi04", "Pi05", "Pi06", "Pi07", "Pi08"}
	wantPrices := []string{"3.50", "6.70", "7.95", "8.50", "9.50", "9.80", "10.90", "10.95"}
	for i, it := range items {
		assert.Equal(t, wantIDs[i], it.ID())
		assert.True(t, decimal.RequireFromString(wantPrices[i]).Equal(it.Price()),
			"price of %s", it.ID())
	}

	assert.Equal(t, "Pizzabrot", items[0].Name())
	assert.Equal(t, "Pizza Parma", items[7].Name())
}

func TestItems_Snapshot(t *testing.T) {
	m := New()

	first := m.Items()
	second := m.Items()
	require.Equal(t, first, second)

	// Mutating the returned view must not touch the catalog.
	first[0] = nil
	_ = append(first, NewItem("Xx99", "Bogus", "", decimal.Zero))

	after := m.Items()
	require.Len(t, after, 8)
	assert.Equal(t, "Pi01", after[0].ID())
	assert.Equal(t, second, after)
}

func TestFindByID(t *testing.T) {
	m := New()

	it, err := m.FindByID("Pi03")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Salami", it.Name())

	_, err = m.FindByID("Pi99")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdd(t *testing.T) {
	m := NewEmpty()

	err := m.Add(nil)
	require.ErrorIs(t, err, ErrNilItem)
	assert.Equal(t, 0, m.Len())

	it := NewItem("Ca01", "Tiramisu", "hausgemacht", decimal.RequireFromString("4.20"))
	require.NoError(t, m.Add(it))
	assert.Equal(t, 1, m.Len())

	found, err := m.FindByID("Ca01")
	require.NoError(t, err)
	assert.True(t, found.Equal(it))
}

func TestItem_IdentityAndCorrection(t *testing.T) {
	a := NewItem("Pi03", "Pizza Salami", "mit Rindersalami", decimal.RequireFromString("7.95"))
	b := NewItem("Pi03", "Salami (renamed)", "", decimal.RequireFromString("8.95"))
	c := NewItem("Pi04", "Pizza Salami", "mit Rindersalami", decimal.RequireFromString("7.95"))

	assert.True(t, a.Equal(b), "same ID means same dish")
	assert.False(t, a.Equal(c), "different ID means different dish")

	a.SetName("Pizza Salami Spezial")
	a.SetDescription("mit extra Salami")
	a.SetPrice(decimal.RequireFromString("8.45"))
	assert.True(t, a.Equal(b), "corrections never change identity")
	assert.Equal(t, "Pizza Salami Spezial", a.Name())
}

func TestItem_String(t *testing.T) {
	it := NewItem("Pi03", "Pizza Salami", "mit Rindersalami", decimal.RequireFromString("7.95"))
	assert.Equal(t, "Pi03 Pizza Salami 7.95 €", it.String())

	whole := NewItem("Pi01", "Pizzabrot", "", decimal.RequireFromString("3.5"))
	assert.Equal(t, "Pi01 Pizzabrot 3.50 €", whole.String(), "always two fraction digits")
}
