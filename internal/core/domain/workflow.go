package domain

type View string

const (
	ViewLogin     View = "LOGIN"
	ViewSignup    View = "SIGNUP"
	ViewDashboard View = "DASHBOARD"
	ViewProfile   View = "PROFILE"
	ViewAnalyzer  View = "ANALYZER"
)

type Tab string

const (
	TabSummary Tab = "SUMMARY"
	TabClauses Tab = "CLAUSES"
	TabRisks   Tab = "RISKS"
	TabChat    Tab = "CHAT"
)

// FilterAll disables category filtering on the dashboard.
const FilterAll = "All"

type SortKey string

const (
	SortNewest SortKey = "Newest"
	SortOldest SortKey = "Oldest"
	SortName   SortKey = "Name"
	SortType   SortKey = "Type"
)
