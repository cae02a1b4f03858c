package rules

import (
	"fmt"
	"strings"

	"github.com/githubnext/boomi-validate/pkg/boomixml"
	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/logger"
	"github.com/githubnext/boomi-validate/pkg/sliceutil"
)

var blockedComponentsLog = logger.New("rules:blocked_components")

// Hit is a blocklisted component reference together with the label of the
// shape that references it.
type Hit struct {
	ComponentID string
	Label       string
}

func (h Hit) String() string {
	if h.Label == "" {
		return h.ComponentID
	}
	return fmt.Sprintf(`%s ("%s")`, h.ComponentID, h.Label)
}

// FindBlockedComponents returns the distinct (componentId, label) pairs whose
// componentId is blocked, in document order.
func FindBlockedComponents(root *boomixml.Element, blocklist Blocklist) []Hit {
	var hits []Hit
	for el := range root.WithAttr(constants.AttrComponentID) {
		id, _ := el.Attr(constants.AttrComponentID)
		id = strings.TrimSpace(id)
		if blocklist.Contains(id) {
			hits = append(hits, Hit{ComponentID: id, Label: ShapeLabel(el)})
		}
	}
	return sliceutil.Deduplicate(hits)
}

// CheckBlockedComponents fails when any element references a blocklisted
// componentId. At most maxReported distinct hits are listed; the rest are
// summarized as "(+N more)". maxReported <= 0 uses the default.
func CheckBlockedComponents(root *boomixml.Element, blocklist Blocklist, maxReported int) Result {
	if maxReported <= 0 {
		maxReported = constants.DefaultMaxReportedHits
	}

	hits := FindBlockedComponents(root, blocklist)
	blockedComponentsLog.Printf("Blocked component scan: blocklist_size=%d, hits=%d", blocklist.Len(), len(hits))

	if len(hits) == 0 {
		return Result{
			Rule:    RuleBlockedComponents,
			Passed:  true,
			Message: "✅ Rule 2 OK: no blocklisted componentId values found in shapes.",
		}
	}

	shown := hits[:min(len(hits), maxReported)]
	formatted := strings.Join(sliceutil.Map(shown, Hit.String), ", ")

	more := ""
	if len(hits) > maxReported {
		more = fmt.Sprintf(" (+%d more)", len(hits)-maxReported)
	}

	return Result{
		Rule:    RuleBlockedComponents,
		Passed:  false,
		Message: "❌ Rule 2 FAIL: blocklisted componentId(s) found in shapes: " + formatted + more,
	}
}
