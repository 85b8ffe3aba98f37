package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/utn-dasi/sigrupos/backend/internal/config"
	"github.com/utn-dasi/sigrupos/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Autenticación y recuperación de contraseña
	h.Mux.Post("/login", h.Login)
	h.Mux.Post("/refresh-token", h.RefreshToken)
	h.Mux.Post("/register", h.Register)
	h.Mux.Post("/recuperar-password", h.RecuperarPassword)
	h.Mux.Post("/restablecer-password", h.RestablecerPassword)

	// Catálogos y recursos de consulta pública
	h.Mux.Get("/tipos-personal", h.GetAllTiposPersonal)
	h.Mux.Get("/opciones-perfil", h.GetOpcionesPerfil)

	h.Mux.Route("/grupos-investigacion", func(r chi.Router) {
		r.Post("/", h.CreateGrupoInvestigacion)
		r.Get("/", h.GetAllGruposInvestigacion)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetGrupoInvestigacion)
			r.Put("/", h.UpdateGrupoInvestigacion)
			r.Delete("/", h.DeleteGrupoInvestigacion)
		})
	})

	h.Mux.Route("/autores", func(r chi.Router) {
		r.Post("/", h.CreateAutor)
		r.Get("/", h.GetAllAutores)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetAutor)
			r.Put("/", h.UpdateAutor)
			r.Delete("/", h.DeleteAutor)
		})
	})

	h.Mux.Route("/tipos-trabajo-publicado", func(r chi.Router) {
		r.Post("/", h.CreateTipoTrabajoPublicado)
		r.Get("/", h.GetAllTiposTrabajoPublicado)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTipoTrabajoPublicado)
			r.Put("/", h.UpdateTipoTrabajoPublicado)
			r.Delete("/", h.DeleteTipoTrabajoPublicado)
		})
	})

	h.Mux.Route("/trabajos-publicados", func(r chi.Router) {
		r.Post("/", h.CreateTrabajoPublicado)
		r.Get("/", h.GetTrabajosPublicados)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTrabajoPublicado)
			r.Put("/", h.UpdateTrabajoPublicado)
			r.Delete("/", h.DeleteTrabajoPublicado)
		})
	})

	// El resto de la API requiere sesión iniciada
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/perfil", func(r chi.Router) {
			r.Use(h.perfil)
			r.Get("/", h.GetPerfil)
			r.Put("/", h.UpdatePerfil)
			r.Delete("/", h.DeletePerfil)
		})
		r.With(h.perfil).Post("/cambiar-contrasena", h.CambiarContrasena)
		r.With(h.perfilPorID).Post("/cambiar-contrasena/{id}", h.CambiarContrasena)

		r.Route("/personas", func(r chi.Router) {
			r.Get("/", h.GetAllPersonas)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPersona)
				r.With(h.perfilPorID).Put("/", h.UpdatePerfil)
				r.With(h.perfilPorID).Delete("/", h.DeletePerfil)
			})
		})

		r.Route("/programas-actividades", func(r chi.Router) {
			r.Post("/", h.CreateProgramaActividades)
			r.Get("/", h.GetAllProgramasActividades)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetProgramaActividades)
				r.Put("/", h.UpdateProgramaActividades)
				r.Delete("/", h.DeleteProgramaActividades)
			})
		})

		r.Route("/lineas-de-investigacion", func(r chi.Router) {
			r.Post("/", h.CreateLineaDeInvestigacion)
			r.Get("/", h.GetAllLineasDeInvestigacion)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetLineaDeInvestigacion)
				r.Put("/", h.UpdateLineaDeInvestigacion)
				r.Delete("/", h.DeleteLineaDeInvestigacion)
			})
		})

		r.Route("/actividades", func(r chi.Router) {
			r.Post("/", h.CreateActividad)
			r.Get("/", h.GetAllActividades)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetActividad)
				r.Put("/", h.UpdateActividad)
				r.Delete("/", h.DeleteActividad)
			})
		})

		r.Route("/actividades-x-persona", func(r chi.Router) {
			r.Post("/", h.CreateActividadXPersona)
			r.Get("/", h.GetAllActividadesXPersona)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetActividadXPersona)
				r.Delete("/", h.DeleteActividadXPersona)
			})
		})

		r.Route("/actividades-transferencia", func(r chi.Router) {
			r.Post("/", h.CreateActividadTransferencia)
			r.Get("/", h.GetAllActividadesTransferencia)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetActividadTransferencia)
				r.Put("/", h.UpdateActividadTransferencia)
				r.Delete("/", h.DeleteActividadTransferencia)
			})
		})

		r.Route("/partes-externas", func(r chi.Router) {
			r.Post("/", h.CreateParteExterna)
			r.Get("/", h.GetAllPartesExternas)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetParteExterna)
				r.Put("/", h.UpdateParteExterna)
				r.Delete("/", h.DeleteParteExterna)
			})
		})

		r.Route("/proyectos-investigacion", func(r chi.Router) {
			r.Post("/", h.CreateProyectoInvestigacion)
			r.Get("/", h.GetAllProyectosInvestigacion)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetProyectoInvestigacion)
				r.Put("/", h.UpdateProyectoInvestigacion)
				r.Delete("/", h.DeleteProyectoInvestigacion)
			})
		})

		r.Route("/trabajos-presentados", func(r chi.Router) {
			r.Post("/", h.CreateTrabajoPresentado)
			r.Get("/", h.GetTrabajosPresentados)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetTrabajoPresentado)
				r.Put("/", h.UpdateTrabajoPresentado)
				r.Delete("/", h.DeleteTrabajoPresentado)
			})
		})

		r.Route("/patentes", func(r chi.Router) {
			r.Post("/", h.CreatePatente)
			r.Get("/", h.GetPatentes)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPatente)
				r.Put("/", h.UpdatePatente)
				r.Delete("/", h.DeletePatente)
			})
		})

		r.Route("/tipos-de-registro", func(r chi.Router) {
			r.Post("/", h.CreateTipoDeRegistro)
			r.Get("/", h.GetAllTiposDeRegistro)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetTipoDeRegistro)
				r.Put("/", h.UpdateTipoDeRegistro)
				r.Delete("/", h.DeleteTipoDeRegistro)
			})
		})

		r.Route("/registros", func(r chi.Router) {
			r.Post("/", h.CreateRegistro)
			r.Get("/", h.GetRegistros)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetRegistro)
				r.Put("/", h.UpdateRegistro)
				r.Delete("/", h.DeleteRegistro)
			})
		})

		r.Route("/informes-rendicion-cuentas", func(r chi.Router) {
			r.Post("/", h.CreateInformeRendicionCuentas)
			r.Get("/", h.GetAllInformesRendicionCuentas)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetInformeRendicionCuentas)
				r.Put("/", h.UpdateInformeRendicionCuentas)
				r.Delete("/", h.DeleteInformeRendicionCuentas)
			})
		})

		r.Route("/erogaciones", func(r chi.Router) {
			r.Post("/", h.CreateErogacion)
			r.Get("/", h.GetAllErogaciones)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetErogacion)
				r.Put("/", h.UpdateErogacion)
				r.Delete("/", h.DeleteErogacion)
			})
		})

		r.Route("/actividades-docentes", func(r chi.Router) {
			r.Post("/", h.CreateActividadDocente)
			r.Get("/", h.GetAllActividadesDocentes)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetActividadDocente)
				r.Put("/", h.UpdateActividadDocente)
				r.Delete("/", h.DeleteActividadDocente)
			})
		})

		r.Route("/investigadores-docentes", func(r chi.Router) {
			r.Post("/", h.CreateInvestigadorDocente)
			r.Get("/", h.GetAllInvestigadoresDocentes)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetInvestigadorDocente)
				r.Put("/", h.UpdateInvestigadorDocente)
				r.Delete("/", h.DeleteInvestigadorDocente)
			})
		})

		r.Route("/becarios-personal-formacion", func(r chi.Router) {
			r.Post("/", h.CreateBecarioPersonalFormacion)
			r.Get("/", h.GetAllBecariosPersonalFormacion)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetBecarioPersonalFormacion)
				r.Put("/", h.UpdateBecarioPersonalFormacion)
				r.Delete("/", h.DeleteBecarioPersonalFormacion)
			})
		})

		r.Route("/investigadores", func(r chi.Router) {
			r.Post("/", h.CreateInvestigador)
			r.Get("/", h.GetAllInvestigadores)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetInvestigador)
				r.Put("/", h.UpdateInvestigador)
				r.Delete("/", h.DeleteInvestigador)
			})
		})

		r.Route("/equipamiento-infraestructura", func(r chi.Router) {
			r.Post("/", h.CreateEquipamientoInfraestructura)
			r.Get("/", h.GetAllEquipamientoInfraestructura)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetEquipamientoInfraestructura)
				r.Put("/", h.UpdateEquipamientoInfraestructura)
				r.Delete("/", h.DeleteEquipamientoInfraestructura)
			})
		})

		r.Route("/documentacion-biblioteca", func(r chi.Router) {
			r.Post("/", h.CreateDocumentacionBiblioteca)
			r.Get("/", h.GetAllDocumentacionBiblioteca)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetDocumentacionBiblioteca)
				r.Put("/", h.UpdateDocumentacionBiblioteca)
				r.Delete("/", h.DeleteDocumentacionBiblioteca)
			})
		})

		r.Route("/memorias-anuales", func(r chi.Router) {
			r.Post("/", h.CreateMemoriaAnual)
			r.Get("/", h.GetAllMemoriasAnuales)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetMemoriaAnual)
				r.Put("/", h.UpdateMemoriaAnual)
				r.Delete("/", h.DeleteMemoriaAnual)
			})
		})

		r.Route("/integrantes-memoria", func(r chi.Router) {
			r.Post("/", h.CreateIntegranteMemoria)
			r.Get("/", h.GetIntegrantesMemoria)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetIntegranteMemoria)
				r.Put("/", h.UpdateIntegranteMemoria)
				r.Delete("/", h.DeleteIntegranteMemoria)
			})
		})

		r.Route("/actividades-memoria", func(r chi.Router) {
			r.Post("/", h.CreateActividadMemoria)
			r.Get("/", h.GetActividadesMemoria)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetActividadMemoria)
				r.Put("/", h.UpdateActividadMemoria)
				r.Delete("/", h.DeleteActividadMemoria)
			})
		})

		r.Route("/publicaciones-memoria", func(r chi.Router) {
			r.Post("/", h.CreatePublicacionMemoria)
			r.Get("/", h.GetPublicacionesMemoria)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPublicacionMemoria)
				r.Delete("/", h.DeletePublicacionMemoria)
			})
		})

		r.Route("/patentes-memoria", func(r chi.Router) {
			r.Post("/", h.CreatePatenteMemoria)
			r.Get("/", h.GetPatentesMemoria)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPatenteMemoria)
				r.Delete("/", h.DeletePatenteMemoria)
			})
		})

		r.Route("/proyectos-memoria", func(r chi.Router) {
			r.Post("/", h.CreateProyectoMemoria)
			r.Get("/", h.GetProyectosMemoria)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetProyectoMemoria)
				r.Delete("/", h.DeleteProyectoMemoria)
			})
		})
	})
}
