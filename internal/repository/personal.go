package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreateActividadDocente(a *domain.ActividadDocente) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO actividades_docentes (denominacion_curso_catedra, fecha_periodo_dictado, rol_desempeniado)
		VALUES ($1, $2, $3)
		RETURNING oid_actividad_docente
	`

	if err := r.dbpool.QueryRowContext(ctx, query, a.DenominacionCursoCatedra, a.FechaPeriodoDictado, a.RolDesempeniado).Scan(&a.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetActividadDocente(id int64) (*domain.ActividadDocente, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT denominacion_curso_catedra, fecha_periodo_dictado, rol_desempeniado FROM actividades_docentes WHERE oid_actividad_docente = $1
	`

	a := &domain.ActividadDocente{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&a.DenominacionCursoCatedra, &a.FechaPeriodoDictado, &a.RolDesempeniado); err != nil {
		return nil, err
	}

	return a, nil
}

func (r *Repository) GetAllActividadesDocentes() ([]*domain.ActividadDocente, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_actividad_docente, denominacion_curso_catedra, fecha_periodo_dictado, rol_desempeniado
		FROM actividades_docentes ORDER BY oid_actividad_docente
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actividades := make([]*domain.ActividadDocente, 0)
	for rows.Next() {
		a := &domain.ActividadDocente{}
		if err := rows.Scan(&a.ID, &a.DenominacionCursoCatedra, &a.FechaPeriodoDictado, &a.RolDesempeniado); err != nil {
			return nil, err
		}
		actividades = append(actividades, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actividades, nil
}

func (r *Repository) UpdateActividadDocente(a *domain.ActividadDocente) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE actividades_docentes
		SET denominacion_curso_catedra = $1, fecha_periodo_dictado = $2, rol_desempeniado = $3
		WHERE oid_actividad_docente = $4
		RETURNING oid_actividad_docente
	`

	if err := r.dbpool.QueryRowContext(ctx, query, a.DenominacionCursoCatedra, a.FechaPeriodoDictado, a.RolDesempeniado, a.ID).Scan(&a.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteActividadDocente(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM actividades_docentes WHERE oid_actividad_docente = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateInvestigadorDocente(i *domain.InvestigadorDocente) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO investigadores_docentes (grado_academico, persona_id, actividad_docente_id)
		VALUES ($1, $2, $3)
		RETURNING oid_investigador_docente
	`

	if err := r.dbpool.QueryRowContext(ctx, query, i.GradoAcademico, i.PersonaID, i.ActividadDocenteID).Scan(&i.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetInvestigadorDocente(id int64) (*domain.InvestigadorDocente, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT grado_academico, persona_id, actividad_docente_id FROM investigadores_docentes WHERE oid_investigador_docente = $1
	`

	i := &domain.InvestigadorDocente{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&i.GradoAcademico, &i.PersonaID, &i.ActividadDocenteID); err != nil {
		return nil, err
	}

	return i, nil
}

func (r *Repository) GetAllInvestigadoresDocentes() ([]*domain.InvestigadorDocente, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_investigador_docente, grado_academico, persona_id, actividad_docente_id
		FROM investigadores_docentes ORDER BY oid_investigador_docente
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investigadores := make([]*domain.InvestigadorDocente, 0)
	for rows.Next() {
		i := &domain.InvestigadorDocente{}
		if err := rows.Scan(&i.ID, &i.GradoAcademico, &i.PersonaID, &i.ActividadDocenteID); err != nil {
			return nil, err
		}
		investigadores = append(investigadores, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return investigadores, nil
}

func (r *Repository) UpdateInvestigadorDocente(i *domain.InvestigadorDocente) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE investigadores_docentes
		SET grado_academico = $1, persona_id = $2, actividad_docente_id = $3
		WHERE oid_investigador_docente = $4
		RETURNING oid_investigador_docente
	`

	if err := r.dbpool.QueryRowContext(ctx, query, i.GradoAcademico, i.PersonaID, i.ActividadDocenteID, i.ID).Scan(&i.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteInvestigadorDocente(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM investigadores_docentes WHERE oid_investigador_docente = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateBecarioPersonalFormacion(b *domain.BecarioPersonalFormacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO becarios_personal_formacion (tipo_formacion, fuente_financiamiento, persona_id)
		VALUES ($1, $2, $3)
		RETURNING oid_becario_personal_formacion
	`

	if err := r.dbpool.QueryRowContext(ctx, query, b.TipoFormacion, b.FuenteFinanciamiento, b.PersonaID).Scan(&b.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetBecarioPersonalFormacion(id int64) (*domain.BecarioPersonalFormacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT tipo_formacion, fuente_financiamiento, persona_id FROM becarios_personal_formacion WHERE oid_becario_personal_formacion = $1
	`

	b := &domain.BecarioPersonalFormacion{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&b.TipoFormacion, &b.FuenteFinanciamiento, &b.PersonaID); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *Repository) GetAllBecariosPersonalFormacion() ([]*domain.BecarioPersonalFormacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_becario_personal_formacion, tipo_formacion, fuente_financiamiento, persona_id
		FROM becarios_personal_formacion ORDER BY oid_becario_personal_formacion
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	becarios := make([]*domain.BecarioPersonalFormacion, 0)
	for rows.Next() {
		b := &domain.BecarioPersonalFormacion{}
		if err := rows.Scan(&b.ID, &b.TipoFormacion, &b.FuenteFinanciamiento, &b.PersonaID); err != nil {
			return nil, err
		}
		becarios = append(becarios, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return becarios, nil
}

func (r *Repository) UpdateBecarioPersonalFormacion(b *domain.BecarioPersonalFormacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE becarios_personal_formacion
		SET tipo_formacion = $1, fuente_financiamiento = $2, persona_id = $3
		WHERE oid_becario_personal_formacion = $4
		RETURNING oid_becario_personal_formacion
	`

	if err := r.dbpool.QueryRowContext(ctx, query, b.TipoFormacion, b.FuenteFinanciamiento, b.PersonaID, b.ID).Scan(&b.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteBecarioPersonalFormacion(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM becarios_personal_formacion WHERE oid_becario_personal_formacion = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateInvestigador(i *domain.Investigador) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO investigadores (tipo_investigador, categoria_utn, dedicacion, programa_de_incentivos, persona_id, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING oid_investigador
	`

	args := []any{i.TipoInvestigador, i.CategoriaUTN, i.Dedicacion, i.ProgramaDeIncentivos, i.PersonaID, i.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&i.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetInvestigador(id int64) (*domain.Investigador, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT tipo_investigador, categoria_utn, dedicacion, programa_de_incentivos, persona_id, grupo_investigacion_id
		FROM investigadores WHERE oid_investigador = $1
	`

	i := &domain.Investigador{
		ID: id,
	}
	dst := []any{&i.TipoInvestigador, &i.CategoriaUTN, &i.Dedicacion, &i.ProgramaDeIncentivos, &i.PersonaID, &i.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return i, nil
}

func (r *Repository) GetAllInvestigadores() ([]*domain.Investigador, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_investigador, tipo_investigador, categoria_utn, dedicacion, programa_de_incentivos, persona_id, grupo_investigacion_id
		FROM investigadores ORDER BY oid_investigador
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investigadores := make([]*domain.Investigador, 0)
	for rows.Next() {
		i := &domain.Investigador{}
		dst := []any{&i.ID, &i.TipoInvestigador, &i.CategoriaUTN, &i.Dedicacion, &i.ProgramaDeIncentivos, &i.PersonaID, &i.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		investigadores = append(investigadores, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return investigadores, nil
}

func (r *Repository) UpdateInvestigador(i *domain.Investigador) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE investigadores
		SET
			tipo_investigador = $1,
			categoria_utn = $2,
			dedicacion = $3,
			programa_de_incentivos = $4,
			persona_id = $5,
			grupo_investigacion_id = $6
		WHERE oid_investigador = $7
		RETURNING oid_investigador
	`

	args := []any{i.TipoInvestigador, i.CategoriaUTN, i.Dedicacion, i.ProgramaDeIncentivos, i.PersonaID, i.GrupoInvestigacionID, i.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&i.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteInvestigador(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM investigadores WHERE oid_investigador = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
