package docstore

import (
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

var regexCache = cache.New(2*time.Minute, 5*time.Minute)

// matchRegexp backs the REGEXP operator of SQLite: "x REGEXP y" calls regexp(y, x).
func matchRegexp(re, s string) (bool, error) {
	if !strings.HasPrefix(re, "(?s)") {
		re = "(?s)" + re
	}
	if cached, found := regexCache.Get(re); found {
		return cached.(*regexp.Regexp).MatchString(s), nil
	}
	compiled, err := regexp.Compile(re)
	if err != nil {
		return false, err
	}
	regexCache.Set(re, compiled, cache.DefaultExpiration)
	return compiled.MatchString(s), nil
}
