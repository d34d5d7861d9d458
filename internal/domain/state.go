package domain

// Planning holds the four free-text planning horizons. Diario is the source
// of the task auto-extraction rule.
type Planning struct {
	Diario  string `json:"diario"`
	Semanal string `json:"semanal"`
	Mensal  string `json:"mensal"`
	Anual   string `json:"anual"`
}

// PlannerState is the aggregate root: all of one user's planner data.
// Exactly one aggregate is live in memory per signed-in session. The JSON
// shape matches the blob the original front-end stored, so existing payloads
// load unchanged.
type PlannerState struct {
	UserName         string          `json:"userName"`
	Tasks            []Task          `json:"tasks"`
	Habits           []Habit         `json:"habits"`
	Wheel            []WheelCategory `json:"wheel"`
	WheelHistory     []WheelEntry    `json:"wheelHistory"`
	Ideas            string          `json:"ideas"`
	Notes            string          `json:"notes"`
	DailyAffirmation string          `json:"dailyAffirmation"`
	FocoHoje         string          `json:"focoHoje"`
	Team             []TeamMember    `json:"team"`
	Clients          []Client        `json:"clients"`
	Meetings         []Meeting       `json:"meetings"`
	Planning         Planning        `json:"planning"`
	SelfCare         []SelfCareItem  `json:"selfCare"`
	Family           []FamilyRecord  `json:"family"`
	FinancePersonal  []Transaction   `json:"financePersonal"`
	FinanceBusiness  []Transaction   `json:"financeBusiness"`
	HealthRecords    []HealthRecord  `json:"healthRecords"`
}

// Clone returns a deep copy of the aggregate. Snapshots handed to callers
// and history entries must never alias the live state.
func (s PlannerState) Clone() PlannerState {
	out := s
	out.Tasks = cloneSlice(s.Tasks)
	out.Habits = cloneHabits(s.Habits)
	out.Wheel = cloneSlice(s.Wheel)
	out.WheelHistory = cloneWheelHistory(s.WheelHistory)
	out.Team = cloneSlice(s.Team)
	out.Clients = cloneClients(s.Clients)
	out.Meetings = cloneSlice(s.Meetings)
	out.SelfCare = cloneSlice(s.SelfCare)
	out.Family = cloneSlice(s.Family)
	out.FinancePersonal = cloneSlice(s.FinancePersonal)
	out.FinanceBusiness = cloneSlice(s.FinanceBusiness)
	out.HealthRecords = cloneSlice(s.HealthRecords)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneHabits(in []Habit) []Habit {
	if in == nil {
		return nil
	}
	out := make([]Habit, len(in))
	for i, h := range in {
		h.Days = cloneSlice(h.Days)
		out[i] = h
	}
	return out
}

func cloneWheelHistory(in []WheelEntry) []WheelEntry {
	if in == nil {
		return nil
	}
	out := make([]WheelEntry, len(in))
	for i, e := range in {
		e.Categories = cloneSlice(e.Categories)
		out[i] = e
	}
	return out
}

func cloneClients(in []Client) []Client {
	if in == nil {
		return nil
	}
	out := make([]Client, len(in))
	for i, c := range in {
		c.History = cloneSlice(c.History)
		out[i] = c
	}
	return out
}
