package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// CanonicalHabits is the fixed 12-entry habit list seeded at first run.
var CanonicalHabits = []string{
	"Acordar Cedo",
	"Oração/ Meditação",
	"Afirmação diária",
	"Podcast",
	"Atividade Física",
	"Pontualidade",
	"Beber mais de 2 litros de água",
	"Escrever",
	"Não Reclamar",
	"Não discutir",
	"Momento com a Familia",
	"Agradecer pelo dia",
}

// CanonicalWheelCategories is the fixed 12-entry life-category list.
var CanonicalWheelCategories = []string{
	"CARREIRA & TRABALHO",
	"FINANÇAS & DINHEIRO",
	"SAÚDE & FITNESS",
	"FAMÍLIA",
	"AMOR & ROMANCE",
	"VIDA SOCIAL & AMIZADES",
	"CRESCIMENTO PESSOAL",
	"RECREAÇÃO & DIVERSÃO",
	"AMBIENTE FÍSICO",
	"CONTRIBUIÇÃO & IMPACTO",
	"ESPIRITUALIDADE",
	"SAÚDE MENTAL & EMOCIONAL",
}

// Affirmations is the fixed pool the daily affirmation is drawn from on
// every sign-in. The drawn value is session-scoped, not durable.
var Affirmations = []string{
	"Eu sou capaz de transformar meus sonhos em realidade com disciplina e foco.",
	"Minha mente é focada e meus objetivos são claros.",
	"Cada desafio é uma oportunidade de crescimento para minha empresa.",
	"Eu atraio prosperidade e abundância em todos os meus projetos.",
	"Minha liderança inspira e motiva todos ao meu redor.",
	"A disciplina é o segredo que me leva aos mais altos patamares.",
	"Hoje eu escolho a excelência em cada pequena ação.",
}

// Quotes is the fixed pool the dashboard quote rotates through by day.
var Quotes = []string{
	"Sucesso não é a chave para a felicidade. Felicidade é a chave para o sucesso. Se você ama o que faz, você será bem-sucedido. - Albert Schweitzer",
	"O futuro pertence àqueles que acreditam na beleza de seus sonhos. - Eleanor Roosevelt",
	"Você não precisa ver toda a escada, apenas dê o primeiro passo. - Martin Luther King Jr.",
	"Uma mulher com uma voz é, por definição, uma mulher forte. - Melinda Gates",
}

const seedWheelScore = 5

// NewSeedState builds the first-run aggregate: the canonical habit list with
// blank weeks, all wheel categories at score 5, and empty collections.
// The daily affirmation is assigned by the session controller, not here.
func NewSeedState(userName string) PlannerState {
	habits := make([]Habit, len(CanonicalHabits))
	for i, name := range CanonicalHabits {
		habits[i] = Habit{
			ID:   fmt.Sprintf("h-%d", i),
			Name: name,
			Days: make([]bool, DaysPerWeek),
		}
	}

	wheel := make([]WheelCategory, len(CanonicalWheelCategories))
	for i, name := range CanonicalWheelCategories {
		wheel[i] = WheelCategory{Name: name, Score: seedWheelScore}
	}

	return PlannerState{
		UserName:        userName,
		Tasks:           []Task{},
		Habits:          habits,
		Wheel:           wheel,
		WheelHistory:    []WheelEntry{},
		Team:            []TeamMember{},
		Clients:         []Client{},
		Meetings:        []Meeting{},
		SelfCare:        []SelfCareItem{},
		Family:          []FamilyRecord{},
		FinancePersonal: []Transaction{},
		FinanceBusiness: []Transaction{},
		HealthRecords:   []HealthRecord{},
	}
}

// RandomAffirmation draws one entry from the affirmation pool.
func RandomAffirmation() string {
	return Affirmations[rand.Intn(len(Affirmations))]
}

// DailyQuote returns the quote for the given day, rotating through the pool
// by day of month.
func DailyQuote(now time.Time) string {
	return Quotes[now.Day()%len(Quotes)]
}
