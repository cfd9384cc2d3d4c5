package faker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lumos-Labs-HQ/shopgen/internal/faker"
)

func TestFixWidth(t *testing.T) {
	assert.Equal(t, "abc             ", faker.FixWidth("abc", 16))
	assert.Equal(t, "abcdefghijklmnop", faker.FixWidth("abcdefghijklmnopqrstuvwxyz", 16))
	assert.Equal(t, "    ", faker.FixWidth("", 4))

	// already at width: unchanged
	assert.Equal(t, "abcd", faker.FixWidth("abcd", 4))
}

func TestFieldWidths(t *testing.T) {
	g := faker.New()

	for i := 0; i < 50; i++ {
		assert.Len(t, g.Username(), 16)
		assert.Len(t, g.Email(), 32)
		assert.Len(t, g.City(), 16)
		assert.Len(t, g.ProductTitle(), 32)
	}
}

func TestUsernamesUnique(t *testing.T) {
	g := faker.New()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		name := g.Username()
		assert.False(t, seen[name], "duplicate username %q", name)
		seen[name] = true
	}
}

func TestEmailShape(t *testing.T) {
	g := faker.New()

	for i := 0; i < 50; i++ {
		email := strings.TrimRight(g.Email(), " ")
		assert.Contains(t, email, "@")
	}
}

func TestIntRange(t *testing.T) {
	g := faker.New()

	for i := 0; i < 500; i++ {
		n := g.IntRange(18, 80)
		assert.GreaterOrEqual(t, n, 18)
		assert.LessOrEqual(t, n, 80)
	}

	// degenerate range
	assert.Equal(t, 7, g.IntRange(7, 7))
}

func TestFraction(t *testing.T) {
	g := faker.New()

	for i := 0; i < 500; i++ {
		f := g.Fraction(0.2)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 0.2)
	}
}

func TestPick(t *testing.T) {
	g := faker.New()
	list := []string{"electronics", "clothing", "food"}

	for i := 0; i < 50; i++ {
		v := g.Pick(list, 16)
		assert.Len(t, v, 16)
		assert.Contains(t, list, strings.TrimRight(v, " "))
	}
}
