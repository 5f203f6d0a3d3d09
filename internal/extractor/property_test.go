package extractor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genNameWord generates plausible non-date filename fragments.
func genNameWord() gopter.Gen {
	return gen.SliceOfN(8, gen.AlphaLowerChar()).Map(func(chars []rune) string {
		return string(chars)
	})
}

// genWindowYear generates years inside the test window.
func genWindowYear() gopter.Gen {
	return gen.IntRange(1990, 2030)
}

func TestRewriteIsIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	e := newTestExtractor(t, Config{})
	fallback := time.Date(2019, 7, 4, 0, 0, 0, 0, time.UTC)

	properties.Property("already-normalized names are unchanged", prop.ForAll(
		func(year, month, day int, word string) bool {
			body := fmt.Sprintf("%04d-%02d-%02d-%s", year, month, day, word)
			got, err := e.Rewrite(body, fallback)
			if err != nil {
				return false
			}
			return got == body
		},
		genWindowYear(),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		genNameWord(),
	))

	properties.Property("rewriting twice equals rewriting once", prop.ForAll(
		func(word string, year, month, day int) bool {
			body := fmt.Sprintf("%s-%04d-%02d-%02d", word, year, month, day)
			once, err := e.Rewrite(body, fallback)
			if err != nil {
				return false
			}
			twice, err := e.Rewrite(once, fallback)
			if err != nil {
				return false
			}
			return once == twice
		},
		genNameWord(),
		genWindowYear(),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	properties.TestingRun(t)
}

func TestYearWindowMembership(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	e := newTestExtractor(t, Config{})
	fallback := time.Date(2019, 7, 4, 0, 0, 0, 0, time.UTC)

	properties.Property("in-window dates produce a YYYY-MM prefix", prop.ForAll(
		func(year, month int, word string) bool {
			body := fmt.Sprintf("%s-%04d-%02d", word, year, month)
			got, err := e.Rewrite(body, fallback)
			if err != nil {
				return false
			}
			want := fmt.Sprintf("%04d-%02d-%s", year, month, word)
			return got == want
		},
		genWindowYear(),
		gen.IntRange(1, 12),
		genNameWord(),
	))

	properties.Property("out-of-window years are ordinary text", prop.ForAll(
		func(year, month, day int, word string) bool {
			body := fmt.Sprintf("%s-%04d-%02d-%02d", word, year, month, day)
			got, err := e.Rewrite(body, fallback)
			if err != nil {
				return false
			}
			// The fallback instant supplies the prefix and the original
			// body is preserved verbatim behind it.
			return strings.HasPrefix(got, "2019-07-04-") && strings.HasSuffix(got, body)
		},
		gen.OneGenOf(gen.IntRange(1000, 1989), gen.IntRange(2031, 9999)),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		genNameWord(),
	))

	properties.TestingRun(t)
}
