package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreateActividad(a *domain.Actividad) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO actividades (descripcion, fecha_inicio, fecha_fin, nro, presupuesto_asignado, resultados_esperados, linea_de_investigacion_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING oid_actividad
	`

	args := []any{a.Descripcion, a.FechaInicio, a.FechaFin, a.Nro, a.PresupuestoAsignado, a.ResultadosEsperados, a.LineaDeInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&a.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetActividad(id int64) (*domain.Actividad, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT descripcion, fecha_inicio, fecha_fin, nro, presupuesto_asignado, resultados_esperados, linea_de_investigacion_id
		FROM actividades WHERE oid_actividad = $1
	`

	a := &domain.Actividad{
		ID: id,
	}
	dst := []any{&a.Descripcion, &a.FechaInicio, &a.FechaFin, &a.Nro, &a.PresupuestoAsignado, &a.ResultadosEsperados, &a.LineaDeInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return a, nil
}

func (r *Repository) GetAllActividades() ([]*domain.Actividad, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_actividad, descripcion, fecha_inicio, fecha_fin, nro, presupuesto_asignado, resultados_esperados, linea_de_investigacion_id
		FROM actividades ORDER BY oid_actividad
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actividades := make([]*domain.Actividad, 0)
	for rows.Next() {
		a := &domain.Actividad{}
		dst := []any{&a.ID, &a.Descripcion, &a.FechaInicio, &a.FechaFin, &a.Nro, &a.PresupuestoAsignado, &a.ResultadosEsperados, &a.LineaDeInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		actividades = append(actividades, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actividades, nil
}

func (r *Repository) UpdateActividad(a *domain.Actividad) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE actividades
		SET
			descripcion = $1,
			fecha_inicio = $2,
			fecha_fin = $3,
			nro = $4,
			presupuesto_asignado = $5,
			resultados_esperados = $6,
			linea_de_investigacion_id = $7
		WHERE oid_actividad = $8
		RETURNING oid_actividad
	`

	args := []any{a.Descripcion, a.FechaInicio, a.FechaFin, a.Nro, a.PresupuestoAsignado, a.ResultadosEsperados, a.LineaDeInvestigacionID, a.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&a.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteActividad(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM actividades WHERE oid_actividad = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateActividadXPersona(ap *domain.ActividadXPersona) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO actividades_x_persona (actividad_id, persona_id)
		VALUES ($1, $2)
		RETURNING oid_actividad_x_persona
	`

	if err := r.dbpool.QueryRowContext(ctx, query, ap.ActividadID, ap.PersonaID).Scan(&ap.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetActividadXPersona(id int64) (*domain.ActividadXPersona, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT actividad_id, persona_id FROM actividades_x_persona WHERE oid_actividad_x_persona = $1
	`

	ap := &domain.ActividadXPersona{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&ap.ActividadID, &ap.PersonaID); err != nil {
		return nil, err
	}

	return ap, nil
}

func (r *Repository) GetAllActividadesXPersona() ([]*domain.ActividadXPersona, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_actividad_x_persona, actividad_id, persona_id FROM actividades_x_persona ORDER BY oid_actividad_x_persona
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vinculos := make([]*domain.ActividadXPersona, 0)
	for rows.Next() {
		ap := &domain.ActividadXPersona{}
		if err := rows.Scan(&ap.ID, &ap.ActividadID, &ap.PersonaID); err != nil {
			return nil, err
		}
		vinculos = append(vinculos, ap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vinculos, nil
}

func (r *Repository) DeleteActividadXPersona(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM actividades_x_persona WHERE oid_actividad_x_persona = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateActividadTransferencia(at *domain.ActividadTransferencia) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO actividades_transferencia (descripcion, denominacion, monto, nro_actividad_transferencia, tipo_actividad, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING oid_actividad_transferencia
	`

	args := []any{at.Descripcion, at.Denominacion, at.Monto, at.NroActividadTransferencia, at.TipoActividad, at.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&at.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetActividadTransferencia(id int64) (*domain.ActividadTransferencia, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT descripcion, denominacion, monto, nro_actividad_transferencia, tipo_actividad, grupo_investigacion_id
		FROM actividades_transferencia WHERE oid_actividad_transferencia = $1
	`

	at := &domain.ActividadTransferencia{
		ID: id,
	}
	dst := []any{&at.Descripcion, &at.Denominacion, &at.Monto, &at.NroActividadTransferencia, &at.TipoActividad, &at.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return at, nil
}

func (r *Repository) GetAllActividadesTransferencia() ([]*domain.ActividadTransferencia, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_actividad_transferencia, descripcion, denominacion, monto, nro_actividad_transferencia, tipo_actividad, grupo_investigacion_id
		FROM actividades_transferencia ORDER BY oid_actividad_transferencia
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actividades := make([]*domain.ActividadTransferencia, 0)
	for rows.Next() {
		at := &domain.ActividadTransferencia{}
		dst := []any{&at.ID, &at.Descripcion, &at.Denominacion, &at.Monto, &at.NroActividadTransferencia, &at.TipoActividad, &at.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		actividades = append(actividades, at)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actividades, nil
}

func (r *Repository) UpdateActividadTransferencia(at *domain.ActividadTransferencia) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE actividades_transferencia
		SET
			descripcion = $1,
			denominacion = $2,
			monto = $3,
			nro_actividad_transferencia = $4,
			tipo_actividad = $5,
			grupo_investigacion_id = $6
		WHERE oid_actividad_transferencia = $7
		RETURNING oid_actividad_transferencia
	`

	args := []any{at.Descripcion, at.Denominacion, at.Monto, at.NroActividadTransferencia, at.TipoActividad, at.GrupoInvestigacionID, at.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&at.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteActividadTransferencia(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM actividades_transferencia WHERE oid_actividad_transferencia = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateParteExterna(pe *domain.ParteExterna) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO partes_externas (descripcion, nombre, tipo_parte, actividad_transferencia_id)
		VALUES ($1, $2, $3, $4)
		RETURNING oid_parte_externa
	`

	if err := r.dbpool.QueryRowContext(ctx, query, pe.Descripcion, pe.Nombre, pe.TipoParte, pe.ActividadTransferenciaID).Scan(&pe.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetParteExterna(id int64) (*domain.ParteExterna, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT descripcion, nombre, tipo_parte, actividad_transferencia_id FROM partes_externas WHERE oid_parte_externa = $1
	`

	pe := &domain.ParteExterna{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&pe.Descripcion, &pe.Nombre, &pe.TipoParte, &pe.ActividadTransferenciaID); err != nil {
		return nil, err
	}

	return pe, nil
}

func (r *Repository) GetAllPartesExternas() ([]*domain.ParteExterna, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_parte_externa, descripcion, nombre, tipo_parte, actividad_transferencia_id FROM partes_externas ORDER BY oid_parte_externa
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partes := make([]*domain.ParteExterna, 0)
	for rows.Next() {
		pe := &domain.ParteExterna{}
		if err := rows.Scan(&pe.ID, &pe.Descripcion, &pe.Nombre, &pe.TipoParte, &pe.ActividadTransferenciaID); err != nil {
			return nil, err
		}
		partes = append(partes, pe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partes, nil
}

func (r *Repository) UpdateParteExterna(pe *domain.ParteExterna) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE partes_externas
		SET descripcion = $1, nombre = $2, tipo_parte = $3, actividad_transferencia_id = $4
		WHERE oid_parte_externa = $5
		RETURNING oid_parte_externa
	`

	if err := r.dbpool.QueryRowContext(ctx, query, pe.Descripcion, pe.Nombre, pe.TipoParte, pe.ActividadTransferenciaID, pe.ID).Scan(&pe.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteParteExterna(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM partes_externas WHERE oid_parte_externa = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
