package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreateProyectoInvestigacion(p *domain.ProyectoInvestigacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO proyectos_investigacion (codigo_proyecto, descripcion, object_type, fecha_inicio, fecha_finalizacion, nombre, tipo_proyecto, logros_obtenidos, fuente_financiamiento, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING oid_proyecto_investigacion
	`

	args := []any{p.CodigoProyecto, p.Descripcion, p.ObjectType, p.FechaInicio, p.FechaFinalizacion, p.Nombre, p.TipoProyecto, p.LogrosObtenidos, p.FuenteFinanciamiento, p.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetProyectoInvestigacion(id int64) (*domain.ProyectoInvestigacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT codigo_proyecto, descripcion, object_type, fecha_inicio, fecha_finalizacion, nombre, tipo_proyecto, logros_obtenidos, fuente_financiamiento, grupo_investigacion_id
		FROM proyectos_investigacion WHERE oid_proyecto_investigacion = $1
	`

	p := &domain.ProyectoInvestigacion{
		ID: id,
	}
	dst := []any{&p.CodigoProyecto, &p.Descripcion, &p.ObjectType, &p.FechaInicio, &p.FechaFinalizacion, &p.Nombre, &p.TipoProyecto, &p.LogrosObtenidos, &p.FuenteFinanciamiento, &p.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) GetAllProyectosInvestigacion() ([]*domain.ProyectoInvestigacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_proyecto_investigacion, codigo_proyecto, descripcion, object_type, fecha_inicio, fecha_finalizacion, nombre, tipo_proyecto, logros_obtenidos, fuente_financiamiento, grupo_investigacion_id
		FROM proyectos_investigacion ORDER BY oid_proyecto_investigacion
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proyectos := make([]*domain.ProyectoInvestigacion, 0)
	for rows.Next() {
		p := &domain.ProyectoInvestigacion{}
		dst := []any{&p.ID, &p.CodigoProyecto, &p.Descripcion, &p.ObjectType, &p.FechaInicio, &p.FechaFinalizacion, &p.Nombre, &p.TipoProyecto, &p.LogrosObtenidos, &p.FuenteFinanciamiento, &p.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		proyectos = append(proyectos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return proyectos, nil
}

func (r *Repository) UpdateProyectoInvestigacion(p *domain.ProyectoInvestigacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE proyectos_investigacion
		SET
			codigo_proyecto = $1,
			descripcion = $2,
			object_type = $3,
			fecha_inicio = $4,
			fecha_finalizacion = $5,
			nombre = $6,
			tipo_proyecto = $7,
			logros_obtenidos = $8,
			fuente_financiamiento = $9,
			grupo_investigacion_id = $10
		WHERE oid_proyecto_investigacion = $11
		RETURNING oid_proyecto_investigacion
	`

	args := []any{p.CodigoProyecto, p.Descripcion, p.ObjectType, p.FechaInicio, p.FechaFinalizacion, p.Nombre, p.TipoProyecto, p.LogrosObtenidos, p.FuenteFinanciamiento, p.GrupoInvestigacionID, p.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteProyectoInvestigacion(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM proyectos_investigacion WHERE oid_proyecto_investigacion = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
