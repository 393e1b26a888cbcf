package domain

import "fmt"

// Tab binds a tab button and its content container to a chart page.
type Tab struct {
	Name   string
	Button string
	Page   int
}

func (t Tab) String() string {
	return fmt.Sprintf("%s:%d", t.Name, t.Page)
}

// TabState is the display state of one tab button and its container.
type TabState struct {
	Tab
	Visible   bool
	Highlight string
}

// TabView is a snapshot of the tab controller after a click.
type TabView struct {
	Active string
	Tabs   []TabState
	Chart  *Chart
	Err    error
}
