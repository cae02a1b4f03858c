package rules

import (
	"fmt"
	"strings"

	"github.com/githubnext/boomi-validate/pkg/boomixml"
	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/logger"
)

var errorHandlingLog = logger.New("rules:error_handling")

// CheckErrorHandling requires at least one returndocuments shape whose label
// contains "error", ignoring case. The first matching shape decides the
// success message.
func CheckErrorHandling(root *boomixml.Element) Result {
	var candidates []string

	for el := range root.All() {
		shapeType, ok := el.Attr(constants.AttrShapeType)
		if !ok || shapeType != constants.ShapeTypeReturnDocuments {
			continue
		}

		label := ShapeLabel(el)
		if strings.Contains(strings.ToLower(label), constants.ErrorLabelKeyword) {
			errorHandlingLog.Printf("Found error path shape: label=%q", label)
			return Result{
				Rule:    RuleErrorHandling,
				Passed:  true,
				Message: fmt.Sprintf(`✅ Rule 1 OK: found returndocuments shape labeled "%s".`, label),
			}
		}
		candidates = append(candidates, displayLabel(label))
	}

	errorHandlingLog.Printf("No error path shape: candidates=%d", len(candidates))

	if len(candidates) > 0 {
		return Result{
			Rule:   RuleErrorHandling,
			Passed: false,
			Message: "❌ Rule 1 FAIL: returndocuments shape found, but none labeled with 'Error'. " +
				"Found labels: " + strings.Join(candidates, ", "),
		}
	}

	return Result{
		Rule:    RuleErrorHandling,
		Passed:  false,
		Message: "❌ Rule 1 FAIL: no returndocuments shape found.",
	}
}
