package cli

import "art-quiz-service/internal/domain"

// CatalogID identifies the single catalog this deployment serves.
const CatalogID = "cidade-cinza"

// builtinCatalog is the fixed question set about the documentary
// "Cidade Cinza"; swap the loader with the Postgres-backed one to manage
// catalogs outside the binary.
func builtinCatalog() map[string]domain.Catalog {
	return map[string]domain.Catalog{
		CatalogID: {
			ID: CatalogID,
			Questions: []domain.QuizQuestion{
				{
					ID:   1,
					Text: "Em qual cidade se passa o documentário Cidade Cinza?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "Rio de Janeiro"},
						{ID: "b", Text: "São Paulo"},
						{ID: "c", Text: "Belo Horizonte"},
						{ID: "d", Text: "Salvador"},
					},
					CorrectAnswerID: "b",
				},
				{
					ID:   2,
					Text: "Qual é o tema central do documentário?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "A construção de prédios históricos"},
						{ID: "b", Text: "A poluição dos rios urbanos"},
						{ID: "c", Text: "O apagamento dos grafites pela prefeitura"},
						{ID: "d", Text: "O transporte público da cidade"},
					},
					CorrectAnswerID: "c",
				},
				{
					ID:   3,
					Text: "Qual dupla de irmãos grafiteiros aparece no documentário?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "OsGemeos"},
						{ID: "b", Text: "Irmãos Campana"},
						{ID: "c", Text: "Irmãos Villas-Bôas"},
						{ID: "d", Text: "Irmãos Rego"},
					},
					CorrectAnswerID: "a",
				},
				{
					ID:   4,
					Text: "Que cor é usada para cobrir os murais na cidade?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "Branco"},
						{ID: "b", Text: "Preto"},
						{ID: "c", Text: "Bege"},
						{ID: "d", Text: "Cinza"},
					},
					CorrectAnswerID: "d",
				},
				{
					ID:   5,
					Text: "O grafite é apresentado no filme principalmente como:",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "Um ato de vandalismo sem valor"},
						{ID: "b", Text: "Uma forma de arte urbana"},
						{ID: "c", Text: "Uma propaganda comercial"},
						{ID: "d", Text: "Um problema de segurança"},
					},
					CorrectAnswerID: "b",
				},
				{
					ID:   6,
					Text: "Qual política pública motiva o conflito retratado no filme?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "O programa Cidade Limpa"},
						{ID: "b", Text: "O rodízio de veículos"},
						{ID: "c", Text: "A lei de zoneamento"},
						{ID: "d", Text: "O horário de verão"},
					},
					CorrectAnswerID: "a",
				},
				{
					ID:   7,
					Text: "Além dos OsGemeos, qual outro artista é destacado no documentário?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "Romero Britto"},
						{ID: "b", Text: "Vik Muniz"},
						{ID: "c", Text: "Nunca"},
						{ID: "d", Text: "Beatriz Milhazes"},
					},
					CorrectAnswerID: "c",
				},
				{
					ID:   8,
					Text: "Qual a diferença apontada no filme entre grafite e pichação?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "Não há diferença, são a mesma coisa"},
						{ID: "b", Text: "O grafite é pago e a pichação é gratuita"},
						{ID: "c", Text: "O grafite busca expressão visual; a pichação, marcação de território"},
						{ID: "d", Text: "A pichação é legalizada e o grafite é proibido"},
					},
					CorrectAnswerID: "c",
				},
				{
					ID:   9,
					Text: "Como parte dos moradores reage ao apagamento dos murais?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "Com indiferença total"},
						{ID: "b", Text: "Comemorando a limpeza"},
						{ID: "c", Text: "Lamentando a perda da arte da cidade"},
						{ID: "d", Text: "Pintando os muros de outras cores"},
					},
					CorrectAnswerID: "c",
				},
				{
					ID:   10,
					Text: "Qual reflexão o documentário propõe ao espectador?",
					Options: []domain.QuestionOption{
						{ID: "a", Text: "Quem decide o que é arte no espaço público"},
						{ID: "b", Text: "Como aumentar a arrecadação municipal"},
						{ID: "c", Text: "Como acabar com a arte de rua"},
						{ID: "d", Text: "Qual tinta dura mais tempo nos muros"},
					},
					CorrectAnswerID: "a",
				},
			},
		},
	}
}
