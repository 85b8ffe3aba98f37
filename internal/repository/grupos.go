package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreateProgramaActividades(pa *domain.ProgramaActividades) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO programas_actividades (anio, objetivos_estrategicos)
		VALUES ($1, $2)
		RETURNING oid_programa_actividades
	`

	if err := r.dbpool.QueryRowContext(ctx, query, pa.Anio, pa.ObjetivosEstrategicos).Scan(&pa.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetProgramaActividades(id int64) (*domain.ProgramaActividades, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT anio, objetivos_estrategicos FROM programas_actividades WHERE oid_programa_actividades = $1
	`

	pa := &domain.ProgramaActividades{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&pa.Anio, &pa.ObjetivosEstrategicos); err != nil {
		return nil, err
	}

	return pa, nil
}

func (r *Repository) GetAllProgramasActividades() ([]*domain.ProgramaActividades, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_programa_actividades, anio, objetivos_estrategicos FROM programas_actividades ORDER BY oid_programa_actividades
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programas := make([]*domain.ProgramaActividades, 0)
	for rows.Next() {
		pa := &domain.ProgramaActividades{}
		if err := rows.Scan(&pa.ID, &pa.Anio, &pa.ObjetivosEstrategicos); err != nil {
			return nil, err
		}
		programas = append(programas, pa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programas, nil
}

func (r *Repository) UpdateProgramaActividades(pa *domain.ProgramaActividades) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE programas_actividades
		SET anio = $1, objetivos_estrategicos = $2
		WHERE oid_programa_actividades = $3
		RETURNING oid_programa_actividades
	`

	if err := r.dbpool.QueryRowContext(ctx, query, pa.Anio, pa.ObjetivosEstrategicos, pa.ID).Scan(&pa.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteProgramaActividades(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM programas_actividades WHERE oid_programa_actividades = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateGrupoInvestigacion(g *domain.GrupoInvestigacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO grupos_investigacion (nombre, facultad_regional_asignada, correo, organigrama, sigla, fuente_financiamiento, programa_actividades_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING oid_grupo_investigacion
	`

	args := []any{g.Nombre, g.FacultadRegionalAsignada, g.Correo, g.Organigrama, g.Sigla, g.FuenteFinanciamiento, g.ProgramaActividadesID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&g.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetGrupoInvestigacion(id int64) (*domain.GrupoInvestigacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT nombre, facultad_regional_asignada, correo, organigrama, sigla, fuente_financiamiento, programa_actividades_id
		FROM grupos_investigacion WHERE oid_grupo_investigacion = $1
	`

	g := &domain.GrupoInvestigacion{
		ID: id,
	}
	dst := []any{&g.Nombre, &g.FacultadRegionalAsignada, &g.Correo, &g.Organigrama, &g.Sigla, &g.FuenteFinanciamiento, &g.ProgramaActividadesID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return g, nil
}

func (r *Repository) GetAllGruposInvestigacion() ([]*domain.GrupoInvestigacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_grupo_investigacion, nombre, facultad_regional_asignada, correo, organigrama, sigla, fuente_financiamiento, programa_actividades_id
		FROM grupos_investigacion ORDER BY oid_grupo_investigacion
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grupos := make([]*domain.GrupoInvestigacion, 0)
	for rows.Next() {
		g := &domain.GrupoInvestigacion{}
		dst := []any{&g.ID, &g.Nombre, &g.FacultadRegionalAsignada, &g.Correo, &g.Organigrama, &g.Sigla, &g.FuenteFinanciamiento, &g.ProgramaActividadesID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		grupos = append(grupos, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grupos, nil
}

func (r *Repository) UpdateGrupoInvestigacion(g *domain.GrupoInvestigacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE grupos_investigacion
		SET
			nombre = $1,
			facultad_regional_asignada = $2,
			correo = $3,
			organigrama = $4,
			sigla = $5,
			fuente_financiamiento = $6,
			programa_actividades_id = $7
		WHERE oid_grupo_investigacion = $8
		RETURNING oid_grupo_investigacion
	`

	args := []any{g.Nombre, g.FacultadRegionalAsignada, g.Correo, g.Organigrama, g.Sigla, g.FuenteFinanciamiento, g.ProgramaActividadesID, g.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&g.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteGrupoInvestigacion(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM grupos_investigacion WHERE oid_grupo_investigacion = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateLineaDeInvestigacion(l *domain.LineaDeInvestigacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO lineas_de_investigacion (nombre, descripcion, programa_actividades_id)
		VALUES ($1, $2, $3)
		RETURNING oid_linea_de_investigacion
	`

	if err := r.dbpool.QueryRowContext(ctx, query, l.Nombre, l.Descripcion, l.ProgramaActividadesID).Scan(&l.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetLineaDeInvestigacion(id int64) (*domain.LineaDeInvestigacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT nombre, descripcion, programa_actividades_id FROM lineas_de_investigacion WHERE oid_linea_de_investigacion = $1
	`

	l := &domain.LineaDeInvestigacion{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&l.Nombre, &l.Descripcion, &l.ProgramaActividadesID); err != nil {
		return nil, err
	}

	return l, nil
}

func (r *Repository) GetAllLineasDeInvestigacion() ([]*domain.LineaDeInvestigacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_linea_de_investigacion, nombre, descripcion, programa_actividades_id
		FROM lineas_de_investigacion ORDER BY oid_linea_de_investigacion
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lineas := make([]*domain.LineaDeInvestigacion, 0)
	for rows.Next() {
		l := &domain.LineaDeInvestigacion{}
		if err := rows.Scan(&l.ID, &l.Nombre, &l.Descripcion, &l.ProgramaActividadesID); err != nil {
			return nil, err
		}
		lineas = append(lineas, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lineas, nil
}

func (r *Repository) UpdateLineaDeInvestigacion(l *domain.LineaDeInvestigacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE lineas_de_investigacion
		SET nombre = $1, descripcion = $2, programa_actividades_id = $3
		WHERE oid_linea_de_investigacion = $4
		RETURNING oid_linea_de_investigacion
	`

	if err := r.dbpool.QueryRowContext(ctx, query, l.Nombre, l.Descripcion, l.ProgramaActividadesID, l.ID).Scan(&l.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteLineaDeInvestigacion(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM lineas_de_investigacion WHERE oid_linea_de_investigacion = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
