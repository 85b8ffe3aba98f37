package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreatePatente(p *domain.Patente) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO patentes (descripcion, tipo, numero, fecha, inventor, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING oid_patente
	`

	args := []any{p.Descripcion, p.Tipo, p.Numero, p.Fecha, p.Inventor, p.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPatente(id int64) (*domain.Patente, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT descripcion, tipo, numero, fecha, inventor, grupo_investigacion_id
		FROM patentes WHERE oid_patente = $1
	`

	p := &domain.Patente{
		ID: id,
	}
	dst := []any{&p.Descripcion, &p.Tipo, &p.Numero, &p.Fecha, &p.Inventor, &p.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) GetPatentes(limit, offset int) ([]*domain.Patente, int, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	total := 0
	if err := r.dbpool.QueryRowContext(ctx, `SELECT COUNT(*) FROM patentes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT oid_patente, descripcion, tipo, numero, fecha, inventor, grupo_investigacion_id
		FROM patentes ORDER BY oid_patente
		LIMIT $1 OFFSET $2
	`

	rows, err := r.dbpool.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	patentes := make([]*domain.Patente, 0)
	for rows.Next() {
		p := &domain.Patente{}
		dst := []any{&p.ID, &p.Descripcion, &p.Tipo, &p.Numero, &p.Fecha, &p.Inventor, &p.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}
		patentes = append(patentes, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return patentes, total, nil
}

func (r *Repository) UpdatePatente(p *domain.Patente) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE patentes
		SET
			descripcion = $1,
			tipo = $2,
			numero = $3,
			fecha = $4,
			inventor = $5,
			grupo_investigacion_id = $6
		WHERE oid_patente = $7
		RETURNING oid_patente
	`

	args := []any{p.Descripcion, p.Tipo, p.Numero, p.Fecha, p.Inventor, p.GrupoInvestigacionID, p.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePatente(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM patentes WHERE oid_patente = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateTipoDeRegistro(t *domain.TipoDeRegistro) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO tipos_de_registro (nombre)
		VALUES ($1)
		RETURNING oid_tipo_de_registro
	`

	if err := r.dbpool.QueryRowContext(ctx, query, t.Nombre).Scan(&t.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTipoDeRegistro(id int64) (*domain.TipoDeRegistro, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT nombre FROM tipos_de_registro WHERE oid_tipo_de_registro = $1
	`

	t := &domain.TipoDeRegistro{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&t.Nombre); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Repository) GetAllTiposDeRegistro() ([]*domain.TipoDeRegistro, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_tipo_de_registro, nombre FROM tipos_de_registro ORDER BY oid_tipo_de_registro
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tipos := make([]*domain.TipoDeRegistro, 0)
	for rows.Next() {
		t := &domain.TipoDeRegistro{}
		if err := rows.Scan(&t.ID, &t.Nombre); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tipos, nil
}

func (r *Repository) UpdateTipoDeRegistro(t *domain.TipoDeRegistro) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE tipos_de_registro SET nombre = $1 WHERE oid_tipo_de_registro = $2 RETURNING oid_tipo_de_registro
	`

	if err := r.dbpool.QueryRowContext(ctx, query, t.Nombre, t.ID).Scan(&t.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTipoDeRegistro(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM tipos_de_registro WHERE oid_tipo_de_registro = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateRegistro(reg *domain.Registro) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO registros (descripcion, tipo_de_registro_id, patente_id)
		VALUES ($1, $2, $3)
		RETURNING oid_registro
	`

	if err := r.dbpool.QueryRowContext(ctx, query, reg.Descripcion, reg.TipoDeRegistroID, reg.PatenteID).Scan(&reg.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetRegistro(id int64) (*domain.Registro, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT descripcion, tipo_de_registro_id, patente_id FROM registros WHERE oid_registro = $1
	`

	reg := &domain.Registro{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&reg.Descripcion, &reg.TipoDeRegistroID, &reg.PatenteID); err != nil {
		return nil, err
	}

	return reg, nil
}

func (r *Repository) GetRegistros(limit, offset int) ([]*domain.Registro, int, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	total := 0
	if err := r.dbpool.QueryRowContext(ctx, `SELECT COUNT(*) FROM registros`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT oid_registro, descripcion, tipo_de_registro_id, patente_id
		FROM registros ORDER BY oid_registro
		LIMIT $1 OFFSET $2
	`

	rows, err := r.dbpool.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	registros := make([]*domain.Registro, 0)
	for rows.Next() {
		reg := &domain.Registro{}
		if err := rows.Scan(&reg.ID, &reg.Descripcion, &reg.TipoDeRegistroID, &reg.PatenteID); err != nil {
			return nil, 0, err
		}
		registros = append(registros, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return registros, total, nil
}

func (r *Repository) UpdateRegistro(reg *domain.Registro) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE registros
		SET descripcion = $1, tipo_de_registro_id = $2, patente_id = $3
		WHERE oid_registro = $4
		RETURNING oid_registro
	`

	if err := r.dbpool.QueryRowContext(ctx, query, reg.Descripcion, reg.TipoDeRegistroID, reg.PatenteID, reg.ID).Scan(&reg.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteRegistro(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM registros WHERE oid_registro = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
