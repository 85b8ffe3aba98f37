package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreateInformeRendicionCuentas(i *domain.InformeRendicionCuentas) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO informes_rendicion_cuentas (periodo_reportado, grupo_investigacion_id)
		VALUES ($1, $2)
		RETURNING oid_informe_rendicion_cuentas
	`

	if err := r.dbpool.QueryRowContext(ctx, query, i.PeriodoReportado, i.GrupoInvestigacionID).Scan(&i.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetInformeRendicionCuentas(id int64) (*domain.InformeRendicionCuentas, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT periodo_reportado, grupo_investigacion_id FROM informes_rendicion_cuentas WHERE oid_informe_rendicion_cuentas = $1
	`

	i := &domain.InformeRendicionCuentas{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&i.PeriodoReportado, &i.GrupoInvestigacionID); err != nil {
		return nil, err
	}

	return i, nil
}

func (r *Repository) GetAllInformesRendicionCuentas() ([]*domain.InformeRendicionCuentas, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_informe_rendicion_cuentas, periodo_reportado, grupo_investigacion_id
		FROM informes_rendicion_cuentas ORDER BY oid_informe_rendicion_cuentas
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	informes := make([]*domain.InformeRendicionCuentas, 0)
	for rows.Next() {
		i := &domain.InformeRendicionCuentas{}
		if err := rows.Scan(&i.ID, &i.PeriodoReportado, &i.GrupoInvestigacionID); err != nil {
			return nil, err
		}
		informes = append(informes, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return informes, nil
}

func (r *Repository) UpdateInformeRendicionCuentas(i *domain.InformeRendicionCuentas) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE informes_rendicion_cuentas
		SET periodo_reportado = $1, grupo_investigacion_id = $2
		WHERE oid_informe_rendicion_cuentas = $3
		RETURNING oid_informe_rendicion_cuentas
	`

	if err := r.dbpool.QueryRowContext(ctx, query, i.PeriodoReportado, i.GrupoInvestigacionID, i.ID).Scan(&i.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteInformeRendicionCuentas(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM informes_rendicion_cuentas WHERE oid_informe_rendicion_cuentas = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateErogacion(e *domain.Erogacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO erogaciones (egresos, ingresos, numero, tipo_erogacion, informe_rendicion_cuentas_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING oid_erogacion
	`

	args := []any{e.Egresos, e.Ingresos, e.Numero, e.TipoErogacion, e.InformeRendicionCuentasID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetErogacion(id int64) (*domain.Erogacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT egresos, ingresos, numero, tipo_erogacion, informe_rendicion_cuentas_id FROM erogaciones WHERE oid_erogacion = $1
	`

	e := &domain.Erogacion{
		ID: id,
	}
	dst := []any{&e.Egresos, &e.Ingresos, &e.Numero, &e.TipoErogacion, &e.InformeRendicionCuentasID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *Repository) GetAllErogaciones() ([]*domain.Erogacion, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_erogacion, egresos, ingresos, numero, tipo_erogacion, informe_rendicion_cuentas_id
		FROM erogaciones ORDER BY oid_erogacion
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	erogaciones := make([]*domain.Erogacion, 0)
	for rows.Next() {
		e := &domain.Erogacion{}
		dst := []any{&e.ID, &e.Egresos, &e.Ingresos, &e.Numero, &e.TipoErogacion, &e.InformeRendicionCuentasID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		erogaciones = append(erogaciones, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return erogaciones, nil
}

func (r *Repository) UpdateErogacion(e *domain.Erogacion) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE erogaciones
		SET egresos = $1, ingresos = $2, numero = $3, tipo_erogacion = $4, informe_rendicion_cuentas_id = $5
		WHERE oid_erogacion = $6
		RETURNING oid_erogacion
	`

	args := []any{e.Egresos, e.Ingresos, e.Numero, e.TipoErogacion, e.InformeRendicionCuentasID, e.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteErogacion(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM erogaciones WHERE oid_erogacion = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
