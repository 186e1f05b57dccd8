package order

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotbox-dev/pizzaservice/internal/domain/customer"
	"github.com/hotbox-dev/pizzaservice/internal/domain/menu"
)

func newTestMenu(t *testing.T) *menu.Menu {
	t.Helper()
	m := menu.NewEmpty()
	require.NoError(t, m.Add(newTestItem("A", "Alpha", "5.00")))
	require.NoError(t, m.Add(newTestItem("B", "Bravo", "6.00")))
	require.NoError(t, m.Add(newTestItem("C", "Charlie", "7.00")))
	return m
}

func TestBuild_SkipsBlankAndMalformed(t *testing.T) {
	b := NewBuilder(newTestMenu(t))

	o := b.Build(BuildRequest{
		Values: url.Values{
			"quantity_A": {"2"},
			"quantity_B": {""},
			"quantity_C": {"abc"},
		},
	})

	lines := o.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "A", lines[0].Item().ID())
	assert.Equal(t, 2, lines[0].Quantity())
}

func TestBuild_SkipsZeroAndNegative(t *testing.T) {
	b := NewBuilder(newTestMenu(t))

	o := b.Build(BuildRequest{
		Values: url.Values{
			"quantity_A": {"0"},
			"quantity_B": {"-3"},
		},
	})

	assert.Empty(t, o.Lines())
	assert.True(t, decimal.Zero.Equal(o.GrandTotal()))
}

func TestBuild_LinesFollowMenuOrder(t *testing.T) {
	b := NewBuilder(newTestMenu(t))

	// Input order is C before A; the result must follow menu order.
	o := b.Build(BuildRequest{
		Values: url.Values{
			"quantity_C": {"1"},
			"quantity_A": {"1"},
		},
	})

	lines := o.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].Item().ID())
	assert.Equal(t, "C", lines[1].Item().ID())
}

func TestBuild_TrimsWhitespace(t *testing.T) {
	b := NewBuilder(newTestMenu(t))

	o := b.Build(BuildRequest{
		Values: url.Values{
			"quantity_A": {"  2\t"},
			"quantity_B": {"   "},
		},
	})

	lines := o.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity())
}

func TestBuild_EmptySubmission(t *testing.T) {
	b := NewBuilder(newTestMenu(t))

	o := b.Build(BuildRequest{Values: url.Values{}})

	require.NotNil(t, o, "the build never fails outright")
	assert.Empty(t, o.Lines())
	assert.True(t, decimal.Zero.Equal(o.GrandTotal()))
}

func TestBuild_EndToEnd(t *testing.T) {
	b := NewBuilder(menu.New())

	anna := customer.New("Frau", "Anna", "Schmidt", "Bahnhofstraße", "12a", "12345", "Berlin")
	o := b.Build(BuildRequest{
		Customer: anna,
		Values: url.Values{
			"quantity_Pi02": {"2"},
			"quantity_Pi03": {"1"},
		},
		RemoteAddr: "203.0.113.7",
		SessionID:  "sess-e2e",
	})

	assert.Equal(t, "203.0.113.7", o.RemoteAddr())
	assert.Equal(t, "sess-e2e", o.SessionID())
	assert.Equal(t, "Frau Anna Schmidt", o.Customer().DisplayName())

	lines := o.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "2 × Pizza Margherita = 13.40 €", lines[0].String())
	assert.Equal(t, "1 × Pizza Salami = 7.95 €", lines[1].String())
	assert.True(t, decimal.RequireFromString("21.35").Equal(o.GrandTotal()))
}
