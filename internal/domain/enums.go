package domain

// Recurrence uses the stored wire values of the original planner payload.
type Recurrence string

const (
	RecurrenceDaily      Recurrence = "diario"
	RecurrenceWeekly     Recurrence = "semanal"
	RecurrenceBiweekly   Recurrence = "quinzenal"
	RecurrenceMonthly    Recurrence = "mensal"
	RecurrenceBimonthly  Recurrence = "bimestral"
	RecurrenceSemiannual Recurrence = "semestral"
	RecurrenceAnnual     Recurrence = "anual"
)

// AllRecurrences lists every recurrence in display order.
var AllRecurrences = []Recurrence{
	RecurrenceDaily,
	RecurrenceWeekly,
	RecurrenceBiweekly,
	RecurrenceMonthly,
	RecurrenceBimonthly,
	RecurrenceSemiannual,
	RecurrenceAnnual,
}

// ValidRecurrences is the canonical set of accepted recurrence strings.
var ValidRecurrences = map[Recurrence]bool{
	RecurrenceDaily: true, RecurrenceWeekly: true, RecurrenceBiweekly: true,
	RecurrenceMonthly: true, RecurrenceBimonthly: true,
	RecurrenceSemiannual: true, RecurrenceAnnual: true,
}

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "ativa"
	ClientInactive ClientStatus = "inativa"
)

type StatusLogType string

const (
	StatusInactivation StatusLogType = "inactivation"
	StatusReactivation StatusLogType = "reactivation"
)

type TeamMemberType string

const (
	MemberEmployee   TeamMemberType = "funcionario"
	MemberFreelancer TeamMemberType = "freelancer"
	MemberContractor TeamMemberType = "terceiro"
	MemberPartner    TeamMemberType = "parceiro"
)

type PaymentType string

const (
	PaymentDaily        PaymentType = "dia"
	PaymentWeekly       PaymentType = "semana"
	PaymentMonthly      PaymentType = "mes"
	PaymentCoProduction PaymentType = "co-producao"
)

type FamilyRecordType string

const (
	FamilyAppointment FamilyRecordType = "consulta"
	FamilyExam        FamilyRecordType = "exame"
	FamilyLeisure     FamilyRecordType = "lazer"
)
