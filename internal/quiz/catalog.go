package quiz

// Question is one entry of the fixed onboarding catalog served to clients.
type Question struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

// The onboarding journey quiz. IDs are 1-based and stable; answers reference
// them, so entries are never reordered or removed.
var catalog = []Question{
	{
		ID:          1,
		Question:    "Como você descreveria seu momento atual da vida?",
		Description: "Seja honesto consigo mesmo. Não há resposta certa ou errada.",
		Options:     []string{"Sobrecarregado", "Equilibrado", "Perdido", "Motivado", "Reconstruindo"},
	},
	{
		ID:          2,
		Question:    "Qual é o seu principal objetivo emocional agora?",
		Description: "O que você mais busca neste momento?",
		Options:     []string{"Paz mental", "Foco", "Disciplina", "Energia", "Autoconfiança"},
	},
	{
		ID:          3,
		Question:    "Como você está lidando com a sua rotina diária?",
		Description: "Pense na organização do seu dia a dia.",
		Options:     []string{"Desorganizada", "Ok", "Muito organizada", "Inexistente"},
	},
	{
		ID:          4,
		Question:    "Com que frequência você sente ansiedade?",
		Description: "Seja sincero sobre seus sentimentos.",
		Options:     []string{"Raramente", "Às vezes", "Frequentemente", "Quase sempre"},
	},
	{
		ID:          5,
		Question:    "Você sente que tem controle sobre seus hábitos?",
		Description: "Reflita sobre sua capacidade de manter rotinas.",
		Options:     []string{"Sim", "Parcialmente", "Não"},
	},
	{
		ID:          6,
		Question:    "Quanto você dorme por noite?",
		Description: "Qualidade do sono é fundamental para o bem-estar.",
		Options:     []string{"Menos de 5h", "5–7h", "7–9h", "Mais de 9h"},
	},
	{
		ID:          7,
		Question:    "Como está sua alimentação?",
		Description: "Pense nos seus hábitos alimentares recentes.",
		Options:     []string{"Ruim", "Irregular", "Normal", "Saudável"},
	},
	{
		ID:          8,
		Question:    "Você sente dificuldade em manter disciplina?",
		Description: "Seja honesto sobre seus desafios.",
		Options:     []string{"Muita", "Média", "Pouca", "Nenhuma"},
	},
	{
		ID:          9,
		Question:    "O que você quer mudar primeiro?",
		Description: "Escolha sua prioridade principal.",
		Options:     []string{"Hábitos", "Emoções", "Produtividade", "Saúde", "Ambiente"},
	},
	{
		ID:          10,
		Question:    "Você pratica atividade física?",
		Description: "Movimento é essencial para o equilíbrio.",
		Options:     []string{"Sim", "Raramente", "Não", "Quero começar"},
	},
	{
		ID:          11,
		Question:    "Qual é seu maior desafio hoje?",
		Description: "Identifique o que mais te impacta.",
		Options:     []string{"Foco", "Ansiedade", "Rotina", "Sono", "Motivação"},
	},
	{
		ID:          12,
		Question:    "Como você lida com pressão?",
		Description: "Entenda seu padrão de resposta ao estresse.",
		Options:     []string{"Evito", "Travo", "Resisto", "Enfrento bem"},
	},
	{
		ID:          13,
		Question:    "Qual ritmo você quer para sua jornada?",
		Description: "Escolha o que faz sentido para você agora.",
		Options:     []string{"Leve", "Moderado", "Intenso"},
	},
	{
		ID:          14,
		Question:    "Quanto tempo por dia você quer dedicar ao seu crescimento pessoal?",
		Description: "Seja realista com seu tempo disponível.",
		Options:     []string{"5 min", "10 min", "15 min", "20+ min"},
	},
	{
		ID:          15,
		Question:    "O que você espera do RaizApp?",
		Description: "Sua expectativa nos ajuda a personalizar sua experiência.",
		Options:     []string{"Clareza", "Auto-organização", "Força emocional", "Mudança de hábitos", "Tudo isso"},
	},
}

// Catalog returns the full question list in presentation order.
func Catalog() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// QuestionByID resolves a catalog entry. The bool reports membership.
func QuestionByID(id int) (Question, bool) {
	if id < 1 || id > len(catalog) {
		return Question{}, false
	}
	return catalog[id-1], true
}
