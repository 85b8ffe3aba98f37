package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreateEquipamientoInfraestructura(e *domain.EquipamientoInfraestructura) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO equipamientos_infraestructura (denominacion, descripcion, fecha_incorporacion, monto_invertido, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING oid_equipamiento_infraestructura
	`

	args := []any{e.Denominacion, e.Descripcion, e.FechaIncorporacion, e.MontoInvertido, e.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEquipamientoInfraestructura(id int64) (*domain.EquipamientoInfraestructura, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT denominacion, descripcion, fecha_incorporacion, monto_invertido, grupo_investigacion_id
		FROM equipamientos_infraestructura WHERE oid_equipamiento_infraestructura = $1
	`

	e := &domain.EquipamientoInfraestructura{
		ID: id,
	}
	dst := []any{&e.Denominacion, &e.Descripcion, &e.FechaIncorporacion, &e.MontoInvertido, &e.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *Repository) GetAllEquipamientosInfraestructura() ([]*domain.EquipamientoInfraestructura, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_equipamiento_infraestructura, denominacion, descripcion, fecha_incorporacion, monto_invertido, grupo_investigacion_id
		FROM equipamientos_infraestructura ORDER BY oid_equipamiento_infraestructura
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipamientos := make([]*domain.EquipamientoInfraestructura, 0)
	for rows.Next() {
		e := &domain.EquipamientoInfraestructura{}
		dst := []any{&e.ID, &e.Denominacion, &e.Descripcion, &e.FechaIncorporacion, &e.MontoInvertido, &e.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		equipamientos = append(equipamientos, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return equipamientos, nil
}

func (r *Repository) UpdateEquipamientoInfraestructura(e *domain.EquipamientoInfraestructura) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE equipamientos_infraestructura
		SET denominacion = $1, descripcion = $2, fecha_incorporacion = $3, monto_invertido = $4, grupo_investigacion_id = $5
		WHERE oid_equipamiento_infraestructura = $6
		RETURNING oid_equipamiento_infraestructura
	`

	args := []any{e.Denominacion, e.Descripcion, e.FechaIncorporacion, e.MontoInvertido, e.GrupoInvestigacionID, e.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEquipamientoInfraestructura(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM equipamientos_infraestructura WHERE oid_equipamiento_infraestructura = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateDocumentacionBiblioteca(d *domain.DocumentacionBiblioteca) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO documentacion_biblioteca (anio, editorial, titulo, autor, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING oid_documentacion_biblioteca
	`

	args := []any{d.Anio, d.Editorial, d.Titulo, d.Autor, d.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&d.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetDocumentacionBiblioteca(id int64) (*domain.DocumentacionBiblioteca, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT anio, editorial, titulo, autor, grupo_investigacion_id FROM documentacion_biblioteca WHERE oid_documentacion_biblioteca = $1
	`

	d := &domain.DocumentacionBiblioteca{
		ID: id,
	}
	dst := []any{&d.Anio, &d.Editorial, &d.Titulo, &d.Autor, &d.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return d, nil
}

func (r *Repository) GetAllDocumentacionBiblioteca() ([]*domain.DocumentacionBiblioteca, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_documentacion_biblioteca, anio, editorial, titulo, autor, grupo_investigacion_id
		FROM documentacion_biblioteca ORDER BY oid_documentacion_biblioteca
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documentos := make([]*domain.DocumentacionBiblioteca, 0)
	for rows.Next() {
		d := &domain.DocumentacionBiblioteca{}
		dst := []any{&d.ID, &d.Anio, &d.Editorial, &d.Titulo, &d.Autor, &d.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		documentos = append(documentos, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return documentos, nil
}

func (r *Repository) UpdateDocumentacionBiblioteca(d *domain.DocumentacionBiblioteca) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE documentacion_biblioteca
		SET anio = $1, editorial = $2, titulo = $3, autor = $4, grupo_investigacion_id = $5
		WHERE oid_documentacion_biblioteca = $6
		RETURNING oid_documentacion_biblioteca
	`

	args := []any{d.Anio, d.Editorial, d.Titulo, d.Autor, d.GrupoInvestigacionID, d.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&d.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteDocumentacionBiblioteca(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM documentacion_biblioteca WHERE oid_documentacion_biblioteca = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
