package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

const cacheDateLayout = "2006-01-02"

// cacheKey identifies one computed report. The include list is stored sorted
// so that two requests for the same categories in different order share an
// entry, and requests for different category sets never collide.
type cacheKey struct {
	guideID    uuid.UUID
	periodType enums.PeriodType
	start      time.Time
	end        time.Time
	include    []enums.MetricCategory
	compare    bool
}

func newCacheKey(req MetricsRequest) cacheKey {
	return cacheKey{
		guideID:    req.GuideID,
		periodType: req.Period.Type,
		start:      req.Period.Start,
		end:        req.Period.End,
		include:    requestedCategories(req),
		compare:    req.CompareWithPeers,
	}
}

// Scope renders the key deterministically for the cache layer.
func (k cacheKey) Scope() string {
	categories := make([]string, len(k.include))
	for i, category := range k.include {
		categories[i] = category.String()
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s:compare=%t",
		k.guideID,
		k.periodType,
		k.start.Format(cacheDateLayout),
		k.end.Format(cacheDateLayout),
		strings.Join(categories, "+"),
		k.compare,
	)
}
