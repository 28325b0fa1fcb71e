package dashboard

// Accordion modes for collapsible dashboard sections.
const (
	AccordionOff     = "off"
	AccordionSibling = "sibling"
	AccordionGlobal  = "global"
)

// CollapsibleState describes one collapsible section as reported by the
// presentation layer: its identifier, the identifier of its immediate
// parent container, and whether it is currently open.
type CollapsibleState struct {
	ID     string
	Parent string
	Open   bool
}

// SectionsToClose returns the IDs of sections that should close when the
// section `opened` opens, given the accordion mode. Global mode closes
// every other open section on the page; sibling mode closes only open
// sections sharing the opened section's immediate parent. When callers
// have both behaviours configured, global takes precedence and they should
// pass AccordionGlobal here. Off (or unknown) mode closes nothing.
func SectionsToClose(mode string, opened CollapsibleState, all []CollapsibleState) []string {
	if mode != AccordionGlobal && mode != AccordionSibling {
		return nil
	}
	var out []string
	for _, s := range all {
		if s.ID == opened.ID || !s.Open {
			continue
		}
		if mode == AccordionSibling && s.Parent != opened.Parent {
			continue
		}
		out = append(out, s.ID)
	}
	return out
}
