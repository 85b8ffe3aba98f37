package repository

import (
	"database/sql"
	"strconv"

	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

// CreateMemoriaAnual inserta la memoria y todas sus filas asociadas en una sola
// transacción. Las filas se insertan en el orden en que llegaron, sin eliminar
// duplicados: un par repetido choca con la restricción de unicidad y toda la
// operación se revierte.
func (r *Repository) CreateMemoriaAnual(m *domain.MemoriaAnual) error {
	ctx, cancel := r.txContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO memorias_anuales (ano, titulo, fecha_inicio, fecha_fin, director, vicedirector, objetivos_generales, objetivos_especificos, actividades_realizadas, resultados_obtenidos, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING oid_memoria_anual, fecha_creacion, fecha_modificacion
	`
	args := []any{m.Ano, m.Titulo, m.FechaInicio, m.FechaFin, m.Director, m.Vicedirector, m.ObjetivosGenerales, m.ObjetivosEspecificos, m.ActividadesRealizadas, m.ResultadosObtenidos, m.GrupoInvestigacionID}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.FechaCreacion, &m.FechaModificacion); err != nil {
		return err
	}

	for i := range m.Integrantes {
		query = `
			INSERT INTO integrantes_memoria (memoria_anual_id, persona_id, rol, dedicacion, horas_semanales)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING oid_integrante_memoria
		`
		params := []any{m.ID, m.Integrantes[i].PersonaID, m.Integrantes[i].Rol, m.Integrantes[i].Dedicacion, m.Integrantes[i].HorasSemanales}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&m.Integrantes[i].ID); err != nil {
			return err
		}
		m.Integrantes[i].MemoriaAnualID = m.ID
	}

	for i := range m.Actividades {
		query = `
			INSERT INTO actividades_memoria (memoria_anual_id, actividad_id, observaciones)
			VALUES ($1, $2, $3)
			RETURNING oid_actividad_memoria
		`
		params := []any{m.ID, m.Actividades[i].ActividadID, m.Actividades[i].Observaciones}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&m.Actividades[i].ID); err != nil {
			return err
		}
		m.Actividades[i].MemoriaAnualID = m.ID
	}

	for i := range m.Publicaciones {
		query = `
			INSERT INTO publicaciones_memoria (memoria_anual_id, trabajo_publicado_id)
			VALUES ($1, $2)
			RETURNING oid_publicacion_memoria
		`
		if err := tx.QueryRowContext(ctx, query, m.ID, m.Publicaciones[i].TrabajoPublicadoID).Scan(&m.Publicaciones[i].ID); err != nil {
			return err
		}
		m.Publicaciones[i].MemoriaAnualID = m.ID
	}

	for i := range m.Patentes {
		query = `
			INSERT INTO patentes_memoria (memoria_anual_id, patente_id)
			VALUES ($1, $2)
			RETURNING oid_patente_memoria
		`
		if err := tx.QueryRowContext(ctx, query, m.ID, m.Patentes[i].PatenteID).Scan(&m.Patentes[i].ID); err != nil {
			return err
		}
		m.Patentes[i].MemoriaAnualID = m.ID
	}

	for i := range m.Proyectos {
		query = `
			INSERT INTO proyectos_memoria (memoria_anual_id, proyecto_investigacion_id)
			VALUES ($1, $2)
			RETURNING oid_proyecto_memoria
		`
		if err := tx.QueryRowContext(ctx, query, m.ID, m.Proyectos[i].ProyectoInvestigacionID).Scan(&m.Proyectos[i].ID); err != nil {
			return err
		}
		m.Proyectos[i].MemoriaAnualID = m.ID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetMemoriaAnual(id int64) (*domain.MemoriaAnual, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT ano, titulo, fecha_creacion, fecha_modificacion, fecha_inicio, fecha_fin, director, vicedirector, objetivos_generales, objetivos_especificos, actividades_realizadas, resultados_obtenidos, grupo_investigacion_id
		FROM memorias_anuales WHERE oid_memoria_anual = $1
	`

	m := &domain.MemoriaAnual{
		ID: id,
	}
	dst := []any{&m.Ano, &m.Titulo, &m.FechaCreacion, &m.FechaModificacion, &m.FechaInicio, &m.FechaFin, &m.Director, &m.Vicedirector, &m.ObjetivosGenerales, &m.ObjetivosEspecificos, &m.ActividadesRealizadas, &m.ResultadosObtenidos, &m.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	r.resolveDirectores(m)

	return m, nil
}

func (r *Repository) GetAllMemoriasAnuales() ([]*domain.MemoriaAnual, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_memoria_anual, ano, titulo, fecha_creacion, fecha_modificacion, fecha_inicio, fecha_fin, director, vicedirector, objetivos_generales, objetivos_especificos, actividades_realizadas, resultados_obtenidos, grupo_investigacion_id
		FROM memorias_anuales ORDER BY oid_memoria_anual
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memorias := make([]*domain.MemoriaAnual, 0)
	for rows.Next() {
		m := &domain.MemoriaAnual{}
		dst := []any{&m.ID, &m.Ano, &m.Titulo, &m.FechaCreacion, &m.FechaModificacion, &m.FechaInicio, &m.FechaFin, &m.Director, &m.Vicedirector, &m.ObjetivosGenerales, &m.ObjetivosEspecificos, &m.ActividadesRealizadas, &m.ResultadosObtenidos, &m.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		memorias = append(memorias, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, m := range memorias {
		r.resolveDirectores(m)
	}

	return memorias, nil
}

// resolveDirectores intenta resolver los campos de texto libre director y
// vicedirector como oids de personas. Si el texto no es numérico o la persona
// no existe, se conserva el texto tal cual: es un caso normal, no un error.
func (r *Repository) resolveDirectores(m *domain.MemoriaAnual) {
	m.DirectorNombre = r.resolvePersonaNombre(m.Director)
	m.VicedirectorNombre = r.resolvePersonaNombre(m.Vicedirector)
}

func (r *Repository) resolvePersonaNombre(texto string) *string {
	if texto == "" {
		return nil
	}

	oid, err := strconv.ParseInt(texto, 10, 64)
	if err != nil {
		return &texto
	}

	p, err := r.GetPersonaByID(oid)
	if err != nil {
		return &texto
	}

	nombre := p.NombreCompleto()
	return &nombre
}

func (r *Repository) UpdateMemoriaAnual(m *domain.MemoriaAnual) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE memorias_anuales
		SET
			ano = $1,
			titulo = $2,
			fecha_inicio = $3,
			fecha_fin = $4,
			director = $5,
			vicedirector = $6,
			objetivos_generales = $7,
			objetivos_especificos = $8,
			actividades_realizadas = $9,
			resultados_obtenidos = $10,
			grupo_investigacion_id = $11,
			fecha_modificacion = now()
		WHERE oid_memoria_anual = $12
		RETURNING fecha_creacion, fecha_modificacion
	`

	args := []any{m.Ano, m.Titulo, m.FechaInicio, m.FechaFin, m.Director, m.Vicedirector, m.ObjetivosGenerales, m.ObjetivosEspecificos, m.ActividadesRealizadas, m.ResultadosObtenidos, m.GrupoInvestigacionID, m.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&m.FechaCreacion, &m.FechaModificacion); err != nil {
		return err
	}

	return nil
}

// DeleteMemoriaAnual elimina la memoria; las filas asociadas caen en cascada.
func (r *Repository) DeleteMemoriaAnual(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM memorias_anuales WHERE oid_memoria_anual = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateIntegranteMemoria(im *domain.IntegranteMemoria) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO integrantes_memoria (memoria_anual_id, persona_id, rol, dedicacion, horas_semanales)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING oid_integrante_memoria
	`

	args := []any{im.MemoriaAnualID, im.PersonaID, im.Rol, im.Dedicacion, im.HorasSemanales}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&im.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetIntegranteMemoria(id int64) (*domain.IntegranteMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT im.memoria_anual_id, im.persona_id, im.rol, im.dedicacion, im.horas_semanales, p.nombre, p.apellido
		FROM integrantes_memoria im
		JOIN personas p ON im.persona_id = p.oid_persona
		WHERE im.oid_integrante_memoria = $1
	`

	im := &domain.IntegranteMemoria{
		ID: id,
	}
	dst := []any{&im.MemoriaAnualID, &im.PersonaID, &im.Rol, &im.Dedicacion, &im.HorasSemanales, &im.PersonaNombre, &im.PersonaApellido}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return im, nil
}

// GetIntegrantesMemoria lista los integrantes, opcionalmente filtrados por la
// memoria a la que pertenecen (memoriaID <= 0 devuelve todos).
func (r *Repository) GetIntegrantesMemoria(memoriaID int64) ([]*domain.IntegranteMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT im.oid_integrante_memoria, im.memoria_anual_id, im.persona_id, im.rol, im.dedicacion, im.horas_semanales, p.nombre, p.apellido
		FROM integrantes_memoria im
		JOIN personas p ON im.persona_id = p.oid_persona
		WHERE $1 <= 0 OR im.memoria_anual_id = $1
		ORDER BY im.oid_integrante_memoria
	`

	rows, err := r.dbpool.QueryContext(ctx, query, memoriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	integrantes := make([]*domain.IntegranteMemoria, 0)
	for rows.Next() {
		im := &domain.IntegranteMemoria{}
		dst := []any{&im.ID, &im.MemoriaAnualID, &im.PersonaID, &im.Rol, &im.Dedicacion, &im.HorasSemanales, &im.PersonaNombre, &im.PersonaApellido}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		integrantes = append(integrantes, im)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return integrantes, nil
}

func (r *Repository) UpdateIntegranteMemoria(im *domain.IntegranteMemoria) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE integrantes_memoria
		SET memoria_anual_id = $1, persona_id = $2, rol = $3, dedicacion = $4, horas_semanales = $5
		WHERE oid_integrante_memoria = $6
		RETURNING oid_integrante_memoria
	`

	args := []any{im.MemoriaAnualID, im.PersonaID, im.Rol, im.Dedicacion, im.HorasSemanales, im.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&im.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteIntegranteMemoria(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM integrantes_memoria WHERE oid_integrante_memoria = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateActividadMemoria(am *domain.ActividadMemoria) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO actividades_memoria (memoria_anual_id, actividad_id, observaciones)
		VALUES ($1, $2, $3)
		RETURNING oid_actividad_memoria
	`

	if err := r.dbpool.QueryRowContext(ctx, query, am.MemoriaAnualID, am.ActividadID, am.Observaciones).Scan(&am.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetActividadMemoria(id int64) (*domain.ActividadMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT memoria_anual_id, actividad_id, observaciones FROM actividades_memoria WHERE oid_actividad_memoria = $1
	`

	am := &domain.ActividadMemoria{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&am.MemoriaAnualID, &am.ActividadID, &am.Observaciones); err != nil {
		return nil, err
	}

	return am, nil
}

func (r *Repository) GetActividadesMemoria(memoriaID int64) ([]*domain.ActividadMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_actividad_memoria, memoria_anual_id, actividad_id, observaciones
		FROM actividades_memoria
		WHERE $1 <= 0 OR memoria_anual_id = $1
		ORDER BY oid_actividad_memoria
	`

	rows, err := r.dbpool.QueryContext(ctx, query, memoriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actividades := make([]*domain.ActividadMemoria, 0)
	for rows.Next() {
		am := &domain.ActividadMemoria{}
		if err := rows.Scan(&am.ID, &am.MemoriaAnualID, &am.ActividadID, &am.Observaciones); err != nil {
			return nil, err
		}
		actividades = append(actividades, am)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actividades, nil
}

func (r *Repository) UpdateActividadMemoria(am *domain.ActividadMemoria) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE actividades_memoria
		SET memoria_anual_id = $1, actividad_id = $2, observaciones = $3
		WHERE oid_actividad_memoria = $4
		RETURNING oid_actividad_memoria
	`

	if err := r.dbpool.QueryRowContext(ctx, query, am.MemoriaAnualID, am.ActividadID, am.Observaciones, am.ID).Scan(&am.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteActividadMemoria(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM actividades_memoria WHERE oid_actividad_memoria = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreatePublicacionMemoria(pm *domain.PublicacionMemoria) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO publicaciones_memoria (memoria_anual_id, trabajo_publicado_id)
		VALUES ($1, $2)
		RETURNING oid_publicacion_memoria
	`

	if err := r.dbpool.QueryRowContext(ctx, query, pm.MemoriaAnualID, pm.TrabajoPublicadoID).Scan(&pm.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPublicacionMemoria(id int64) (*domain.PublicacionMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT memoria_anual_id, trabajo_publicado_id FROM publicaciones_memoria WHERE oid_publicacion_memoria = $1
	`

	pm := &domain.PublicacionMemoria{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&pm.MemoriaAnualID, &pm.TrabajoPublicadoID); err != nil {
		return nil, err
	}

	return pm, nil
}

func (r *Repository) GetPublicacionesMemoria(memoriaID int64) ([]*domain.PublicacionMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_publicacion_memoria, memoria_anual_id, trabajo_publicado_id
		FROM publicaciones_memoria
		WHERE $1 <= 0 OR memoria_anual_id = $1
		ORDER BY oid_publicacion_memoria
	`

	rows, err := r.dbpool.QueryContext(ctx, query, memoriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	publicaciones := make([]*domain.PublicacionMemoria, 0)
	for rows.Next() {
		pm := &domain.PublicacionMemoria{}
		if err := rows.Scan(&pm.ID, &pm.MemoriaAnualID, &pm.TrabajoPublicadoID); err != nil {
			return nil, err
		}
		publicaciones = append(publicaciones, pm)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return publicaciones, nil
}

func (r *Repository) DeletePublicacionMemoria(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM publicaciones_memoria WHERE oid_publicacion_memoria = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreatePatenteMemoria(pm *domain.PatenteMemoria) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO patentes_memoria (memoria_anual_id, patente_id)
		VALUES ($1, $2)
		RETURNING oid_patente_memoria
	`

	if err := r.dbpool.QueryRowContext(ctx, query, pm.MemoriaAnualID, pm.PatenteID).Scan(&pm.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPatenteMemoria(id int64) (*domain.PatenteMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT memoria_anual_id, patente_id FROM patentes_memoria WHERE oid_patente_memoria = $1
	`

	pm := &domain.PatenteMemoria{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&pm.MemoriaAnualID, &pm.PatenteID); err != nil {
		return nil, err
	}

	return pm, nil
}

func (r *Repository) GetPatentesMemoria(memoriaID int64) ([]*domain.PatenteMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_patente_memoria, memoria_anual_id, patente_id
		FROM patentes_memoria
		WHERE $1 <= 0 OR memoria_anual_id = $1
		ORDER BY oid_patente_memoria
	`

	rows, err := r.dbpool.QueryContext(ctx, query, memoriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patentes := make([]*domain.PatenteMemoria, 0)
	for rows.Next() {
		pm := &domain.PatenteMemoria{}
		if err := rows.Scan(&pm.ID, &pm.MemoriaAnualID, &pm.PatenteID); err != nil {
			return nil, err
		}
		patentes = append(patentes, pm)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return patentes, nil
}

func (r *Repository) DeletePatenteMemoria(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM patentes_memoria WHERE oid_patente_memoria = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateProyectoMemoria(pm *domain.ProyectoMemoria) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO proyectos_memoria (memoria_anual_id, proyecto_investigacion_id)
		VALUES ($1, $2)
		RETURNING oid_proyecto_memoria
	`

	if err := r.dbpool.QueryRowContext(ctx, query, pm.MemoriaAnualID, pm.ProyectoInvestigacionID).Scan(&pm.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetProyectoMemoria(id int64) (*domain.ProyectoMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT memoria_anual_id, proyecto_investigacion_id FROM proyectos_memoria WHERE oid_proyecto_memoria = $1
	`

	pm := &domain.ProyectoMemoria{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&pm.MemoriaAnualID, &pm.ProyectoInvestigacionID); err != nil {
		return nil, err
	}

	return pm, nil
}

func (r *Repository) GetProyectosMemoria(memoriaID int64) ([]*domain.ProyectoMemoria, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_proyecto_memoria, memoria_anual_id, proyecto_investigacion_id
		FROM proyectos_memoria
		WHERE $1 <= 0 OR memoria_anual_id = $1
		ORDER BY oid_proyecto_memoria
	`

	rows, err := r.dbpool.QueryContext(ctx, query, memoriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proyectos := make([]*domain.ProyectoMemoria, 0)
	for rows.Next() {
		pm := &domain.ProyectoMemoria{}
		if err := rows.Scan(&pm.ID, &pm.MemoriaAnualID, &pm.ProyectoInvestigacionID); err != nil {
			return nil, err
		}
		proyectos = append(proyectos, pm)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return proyectos, nil
}

func (r *Repository) DeleteProyectoMemoria(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM proyectos_memoria WHERE oid_proyecto_memoria = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// ExistsMemoriaAnual indica si la memoria existe, para validar altas directas
// sobre los recursos asociados.
func (r *Repository) ExistsMemoriaAnual(id int64) (bool, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	exists := false
	query := `SELECT EXISTS (SELECT 1 FROM memorias_anuales WHERE oid_memoria_anual = $1)`
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return exists, nil
}
