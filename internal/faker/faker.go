package faker

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// DataGenerator produces fake field values from word lists. A counter keeps
// usernames and emails unique across one run.
type DataGenerator struct {
	rand    *rand.Rand
	counter int
}

func New() *DataGenerator {
	return &DataGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var firstNames = []string{
	"john", "jane", "alice", "bob", "charlie", "diana", "eve", "frank",
	"grace", "henry", "ivan", "julia", "kevin", "laura", "mike", "nina",
}

var cities = []string{
	"Springfield", "Riverside", "Franklin", "Greenville", "Bristol",
	"Clinton", "Fairview", "Salem", "Madison", "Georgetown", "Arlington",
	"Ashland", "Dover", "Hudson", "Milton", "Newport",
}

var phraseAdjectives = []string{
	"Ergonomic", "Rustic", "Intelligent", "Gorgeous", "Incredible",
	"Fantastic", "Practical", "Sleek", "Awesome", "Generic", "Handcrafted",
	"Refined", "Unbranded", "Licensed", "Small", "Durable",
}

var phraseMaterials = []string{
	"Steel", "Wooden", "Concrete", "Plastic", "Cotton", "Granite",
	"Rubber", "Leather", "Silk", "Wool", "Linen", "Marble", "Iron", "Bronze",
}

var phraseNouns = []string{
	"Chair", "Car", "Computer", "Keyboard", "Mouse", "Bike", "Ball",
	"Gloves", "Pants", "Shirt", "Table", "Shoes", "Hat", "Towels", "Soap",
	"Tuna", "Chicken", "Fish", "Cheese", "Bacon", "Pizza", "Salad", "Sausages",
}

var emailDomains = []string{"example.com", "example.org", "example.net", "mail.com"}

func (g *DataGenerator) Username() string {
	g.counter++
	name := firstNames[g.rand.Intn(len(firstNames))]
	return FixWidth(fmt.Sprintf("%s%d", name, g.counter), 16)
}

func (g *DataGenerator) Email() string {
	g.counter++
	name := firstNames[g.rand.Intn(len(firstNames))]
	domain := emailDomains[g.rand.Intn(len(emailDomains))]
	return FixWidth(fmt.Sprintf("%s%d@%s", name, g.counter, domain), 32)
}

func (g *DataGenerator) City() string {
	return FixWidth(cities[g.rand.Intn(len(cities))], 16)
}

// ProductTitle composes a catch-phrase style name: adjective, material, noun.
func (g *DataGenerator) ProductTitle() string {
	title := phraseAdjectives[g.rand.Intn(len(phraseAdjectives))] + " " +
		phraseMaterials[g.rand.Intn(len(phraseMaterials))] + " " +
		phraseNouns[g.rand.Intn(len(phraseNouns))]
	return FixWidth(title, 32)
}

// Pick returns a random element of list, fixed to width.
func (g *DataGenerator) Pick(list []string, width int) string {
	return FixWidth(list[g.rand.Intn(len(list))], width)
}

// IntRange returns a uniform integer in [min, max].
func (g *DataGenerator) IntRange(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

// Fraction returns a uniform float in [0, max).
func (g *DataGenerator) Fraction(max float64) float64 {
	return g.rand.Float64() * max
}

// FixWidth truncates s to width runes and right-pads with spaces to exactly
// width. Every string field in the output has a fixed column width.
func FixWidth(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}
