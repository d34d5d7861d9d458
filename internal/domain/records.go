package domain

// The collections below are carried in the aggregate as opaque pass-through
// lists: the core persists and snapshots them but derives nothing from them.

type TeamMember struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email"`
	Type             TeamMemberType `json:"type"`
	Role             string         `json:"role"`
	Responsibilities string         `json:"responsibilities"`
	PaymentType      PaymentType    `json:"paymentType"`
}

type StatusLog struct {
	Type   StatusLogType `json:"type"`
	Date   string        `json:"date"`
	Reason string        `json:"reason"`
}

type Client struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Status      ClientStatus `json:"status"`
	LastContact string       `json:"lastContact"`
	Notes       string       `json:"notes"`
	History     []StatusLog  `json:"history,omitempty"`
}

type Meeting struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Participants string `json:"participants"`
	Agenda       string `json:"agenda"`
	Link         string `json:"link"`
}

type SelfCareItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	LastDate  string `json:"lastDate,omitempty"`
}

type FamilyRecord struct {
	ID    string           `json:"id"`
	Type  FamilyRecordType `json:"type"`
	Title string           `json:"title"`
	Date  string           `json:"date"`
	Notes string           `json:"notes"`
}

type HealthRecord struct {
	ID             string `json:"id"`
	Person         string `json:"person"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	TookMedication bool   `json:"tookMedication"`
	MedicationName string `json:"medicationName,omitempty"`
}
