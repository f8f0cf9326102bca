package roll

import "mudaeroll/internal/domain"

// maxNesting bounds how deep the selector descends into button groups.
// The protocol nests at most two levels today; the cap guards against
// pathological payloads without recursing.
const maxNesting = 16

// SelectButton flattens tree depth-first and returns the first button whose
// emoji name matches the earliest possible preference. Preference order
// wins over position; position only breaks ties within one preference.
func SelectButton(tree []domain.Component, preferences []string) (domain.Component, bool) {
	buttons := flattenButtons(tree)
	if len(buttons) == 0 {
		return domain.Component{}, false
	}
	for _, want := range preferences {
		for _, b := range buttons {
			if b.EmojiName() == want {
				return b, true
			}
		}
	}
	return domain.Component{}, false
}

// flattenButtons collects every button leaf in document order, walking the
// tree with an explicit stack instead of recursion.
func flattenButtons(tree []domain.Component) []domain.Component {
	type frame struct {
		node  domain.Component
		depth int
	}
	stack := make([]frame, 0, len(tree))
	for i := len(tree) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: tree[i]})
	}

	var buttons []domain.Component
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case f.node.IsButton():
			buttons = append(buttons, f.node)
		case f.node.IsGroup() && f.depth < maxNesting:
			children := f.node.Components
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: children[i], depth: f.depth + 1})
			}
		}
	}
	return buttons
}
