package store

import "github.com/chayilhub/chayil/internal/domain"

// Patch is a partial update of the aggregate's top-level fields. Every field
// is optional; nil means "leave unchanged". Collections are replaced
// wholesale, never deep-merged. The set of fields is statically enumerated,
// so unknown keys in a decoded patch body are dropped by the JSON decoder
// rather than rejected.
type Patch struct {
	UserName         *string                 `json:"userName,omitempty"`
	Tasks            *[]domain.Task          `json:"tasks,omitempty"`
	Habits           *[]domain.Habit         `json:"habits,omitempty"`
	Wheel            *[]domain.WheelCategory `json:"wheel,omitempty"`
	WheelHistory     *[]domain.WheelEntry    `json:"wheelHistory,omitempty"`
	Ideas            *string                 `json:"ideas,omitempty"`
	Notes            *string                 `json:"notes,omitempty"`
	DailyAffirmation *string                 `json:"dailyAffirmation,omitempty"`
	FocoHoje         *string                 `json:"focoHoje,omitempty"`
	Team             *[]domain.TeamMember    `json:"team,omitempty"`
	Clients          *[]domain.Client        `json:"clients,omitempty"`
	Meetings         *[]domain.Meeting       `json:"meetings,omitempty"`
	Planning         *domain.Planning        `json:"planning,omitempty"`
	SelfCare         *[]domain.SelfCareItem  `json:"selfCare,omitempty"`
	Family           *[]domain.FamilyRecord  `json:"family,omitempty"`
	FinancePersonal  *[]domain.Transaction   `json:"financePersonal,omitempty"`
	FinanceBusiness  *[]domain.Transaction   `json:"financeBusiness,omitempty"`
	HealthRecords    *[]domain.HealthRecord  `json:"healthRecords,omitempty"`
}

// apply shallow-merges the patch into state and returns the names of the
// fields that were set.
func (p Patch) apply(state *domain.PlannerState) []string {
	var fields []string
	set := func(name string) { fields = append(fields, name) }

	if p.UserName != nil {
		state.UserName = *p.UserName
		set("userName")
	}
	if p.Tasks != nil {
		state.Tasks = *p.Tasks
		set("tasks")
	}
	if p.Habits != nil {
		state.Habits = *p.Habits
		set("habits")
	}
	if p.Wheel != nil {
		state.Wheel = *p.Wheel
		set("wheel")
	}
	if p.WheelHistory != nil {
		state.WheelHistory = *p.WheelHistory
		set("wheelHistory")
	}
	if p.Ideas != nil {
		state.Ideas = *p.Ideas
		set("ideas")
	}
	if p.Notes != nil {
		state.Notes = *p.Notes
		set("notes")
	}
	if p.DailyAffirmation != nil {
		state.DailyAffirmation = *p.DailyAffirmation
		set("dailyAffirmation")
	}
	if p.FocoHoje != nil {
		state.FocoHoje = *p.FocoHoje
		set("focoHoje")
	}
	if p.Team != nil {
		state.Team = *p.Team
		set("team")
	}
	if p.Clients != nil {
		state.Clients = *p.Clients
		set("clients")
	}
	if p.Meetings != nil {
		state.Meetings = *p.Meetings
		set("meetings")
	}
	if p.Planning != nil {
		state.Planning = *p.Planning
		set("planning")
	}
	if p.SelfCare != nil {
		state.SelfCare = *p.SelfCare
		set("selfCare")
	}
	if p.Family != nil {
		state.Family = *p.Family
		set("family")
	}
	if p.FinancePersonal != nil {
		state.FinancePersonal = *p.FinancePersonal
		set("financePersonal")
	}
	if p.FinanceBusiness != nil {
		state.FinanceBusiness = *p.FinanceBusiness
		set("financeBusiness")
	}
	if p.HealthRecords != nil {
		state.HealthRecords = *p.HealthRecords
		set("healthRecords")
	}
	return fields
}
