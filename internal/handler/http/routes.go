package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the full route tree.
//
// The welcome endpoint and the three token-issuing endpoints are public;
// the token endpoints additionally sit behind the per-IP rate limiter.
// Every shelter resource router is mounted inside the guarded group, so no
// entity data is reachable without a valid token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)

		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/authentication", h.authentication)
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})
	})

	// shelter resources, token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Mount("/animals", newResource(h.services.Animals, resourceMessages{
			Empty:    "Nenhum animal encontrado no banco de dados.",
			NotFound: "Animal não encontrado no banco de dados.",
		}, h.logger).routes())

		r.Mount("/adocoes", newResource(h.services.Adoptions, resourceMessages{
			Empty:    "Nenhuma adoção encontrada no banco de dados.",
			NotFound: "Adoção não encontrada no banco de dados.",
		}, h.logger).routes())

		r.Mount("/adotantes", newResource(h.services.Adopters, resourceMessages{
			Empty:    "Nenhum adotante encontrado no banco de dados.",
			NotFound: "Adotante não encontrado no banco de dados.",
		}, h.logger).routes())

		r.Mount("/temporary_shelters", newResource(h.services.TemporaryShelters, resourceMessages{
			Empty:    "Nenhum lar temporário encontrado no banco de dados.",
			NotFound: "Lar temporário não encontrado no banco de dados.",
		}, h.logger).routes())

		r.Mount("/hospedeiros", newResource(h.services.Hosts, resourceMessages{
			Empty:    "Nenhum hospedeiro encontrado no banco de dados.",
			NotFound: "Hospedeiro não encontrado no banco de dados.",
		}, h.logger).routes())

		r.Mount("/apadrinhamentos", newResource(h.services.Sponsorships, resourceMessages{
			Empty:    "Nenhum apadrinhamento encontrado no banco de dados.",
			NotFound: "Apadrinhamento não encontrado no banco de dados.",
		}, h.logger).routes())

		r.Mount("/procedimentos", newResource(h.services.Procedures, resourceMessages{
			Empty:    "Nenhum procedimento encontrado no banco de dados.",
			NotFound: "Procedimento não encontrado no banco de dados.",
		}, h.logger).routes())

		r.Mount("/campanhas", newResource(h.services.Campaigns, resourceMessages{
			Empty:    "Nenhuma campanha encontrada no banco de dados.",
			NotFound: "Campanha não encontrada no banco de dados.",
		}, h.logger).routes())

		r.Mount("/doacoes", newResource(h.services.Donations, resourceMessages{
			Empty:    "Nenhuma doação encontrada no banco de dados.",
			NotFound: "Doação não encontrada no banco de dados.",
		}, h.logger).routes())

		r.Mount("/despesas", newResource(h.services.Expenses, resourceMessages{
			Empty:    "Nenhuma despesa encontrada no banco de dados.",
			NotFound: "Despesa não encontrada no banco de dados.",
		}, h.logger).routes())

		r.Mount("/estoque", newResource(h.services.StockItems, resourceMessages{
			Empty:    "Nenhum item de estoque encontrado no banco de dados.",
			NotFound: "Item de estoque não encontrado no banco de dados.",
		}, h.logger).routes())

		r.Mount("/tarefas", newResource(h.services.Tasks, resourceMessages{
			Empty:    "Nenhuma tarefa encontrada no banco de dados.",
			NotFound: "Tarefa não encontrada no banco de dados.",
		}, h.logger).routes())

		r.Mount("/voluntarios", newResource(h.services.Volunteers, resourceMessages{
			Empty:    "Nenhum voluntário encontrado no banco de dados.",
			NotFound: "Voluntário não encontrado no banco de dados.",
		}, h.logger).routes())
	})

	return router
}
