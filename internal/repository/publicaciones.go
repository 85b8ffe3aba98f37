package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreateAutor(a *domain.Autor) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO autores (nombre, apellido)
		VALUES ($1, $2)
		RETURNING oid_autor
	`

	if err := r.dbpool.QueryRowContext(ctx, query, a.Nombre, a.Apellido).Scan(&a.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAutor(id int64) (*domain.Autor, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT nombre, apellido FROM autores WHERE oid_autor = $1
	`

	a := &domain.Autor{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&a.Nombre, &a.Apellido); err != nil {
		return nil, err
	}

	return a, nil
}

func (r *Repository) GetAllAutores() ([]*domain.Autor, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_autor, nombre, apellido FROM autores ORDER BY oid_autor
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	autores := make([]*domain.Autor, 0)
	for rows.Next() {
		a := &domain.Autor{}
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Apellido); err != nil {
			return nil, err
		}
		autores = append(autores, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return autores, nil
}

func (r *Repository) UpdateAutor(a *domain.Autor) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE autores SET nombre = $1, apellido = $2 WHERE oid_autor = $3 RETURNING oid_autor
	`

	if err := r.dbpool.QueryRowContext(ctx, query, a.Nombre, a.Apellido, a.ID).Scan(&a.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAutor(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM autores WHERE oid_autor = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateTipoTrabajoPublicado(tp *domain.TipoTrabajoPublicado) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO tipos_trabajo_publicado (nombre)
		VALUES ($1)
		RETURNING oid_tipo_trabajo_publicado
	`

	if err := r.dbpool.QueryRowContext(ctx, query, tp.Nombre).Scan(&tp.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTipoTrabajoPublicado(id int64) (*domain.TipoTrabajoPublicado, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT nombre FROM tipos_trabajo_publicado WHERE oid_tipo_trabajo_publicado = $1
	`

	tp := &domain.TipoTrabajoPublicado{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&tp.Nombre); err != nil {
		return nil, err
	}

	return tp, nil
}

func (r *Repository) GetAllTiposTrabajoPublicado() ([]*domain.TipoTrabajoPublicado, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT oid_tipo_trabajo_publicado, nombre FROM tipos_trabajo_publicado ORDER BY oid_tipo_trabajo_publicado
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tipos := make([]*domain.TipoTrabajoPublicado, 0)
	for rows.Next() {
		tp := &domain.TipoTrabajoPublicado{}
		if err := rows.Scan(&tp.ID, &tp.Nombre); err != nil {
			return nil, err
		}
		tipos = append(tipos, tp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tipos, nil
}

func (r *Repository) UpdateTipoTrabajoPublicado(tp *domain.TipoTrabajoPublicado) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE tipos_trabajo_publicado SET nombre = $1 WHERE oid_tipo_trabajo_publicado = $2 RETURNING oid_tipo_trabajo_publicado
	`

	if err := r.dbpool.QueryRowContext(ctx, query, tp.Nombre, tp.ID).Scan(&tp.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTipoTrabajoPublicado(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM tipos_trabajo_publicado WHERE oid_tipo_trabajo_publicado = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateTrabajoPublicado(t *domain.TrabajoPublicado) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO trabajos_publicados (titulo, issn, editorial, nombre_revista, pais, estado, tipo_trabajo_publicado_id, autor_id, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING oid_trabajo_publicado
	`

	args := []any{t.Titulo, t.ISSN, t.Editorial, t.NombreRevista, t.Pais, t.Estado, t.TipoTrabajoPublicadoID, t.AutorID, t.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&t.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTrabajoPublicado(id int64) (*domain.TrabajoPublicado, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT titulo, issn, editorial, nombre_revista, pais, estado, tipo_trabajo_publicado_id, autor_id, grupo_investigacion_id
		FROM trabajos_publicados WHERE oid_trabajo_publicado = $1
	`

	t := &domain.TrabajoPublicado{
		ID: id,
	}
	dst := []any{&t.Titulo, &t.ISSN, &t.Editorial, &t.NombreRevista, &t.Pais, &t.Estado, &t.TipoTrabajoPublicadoID, &t.AutorID, &t.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return t, nil
}

// GetTrabajosPublicados devuelve una página de trabajos y el total de filas.
func (r *Repository) GetTrabajosPublicados(limit, offset int) ([]*domain.TrabajoPublicado, int, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	total := 0
	if err := r.dbpool.QueryRowContext(ctx, `SELECT COUNT(*) FROM trabajos_publicados`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT oid_trabajo_publicado, titulo, issn, editorial, nombre_revista, pais, estado, tipo_trabajo_publicado_id, autor_id, grupo_investigacion_id
		FROM trabajos_publicados ORDER BY oid_trabajo_publicado
		LIMIT $1 OFFSET $2
	`

	rows, err := r.dbpool.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	trabajos := make([]*domain.TrabajoPublicado, 0)
	for rows.Next() {
		t := &domain.TrabajoPublicado{}
		dst := []any{&t.ID, &t.Titulo, &t.ISSN, &t.Editorial, &t.NombreRevista, &t.Pais, &t.Estado, &t.TipoTrabajoPublicadoID, &t.AutorID, &t.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}
		trabajos = append(trabajos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return trabajos, total, nil
}

func (r *Repository) UpdateTrabajoPublicado(t *domain.TrabajoPublicado) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE trabajos_publicados
		SET
			titulo = $1,
			issn = $2,
			editorial = $3,
			nombre_revista = $4,
			pais = $5,
			estado = $6,
			tipo_trabajo_publicado_id = $7,
			autor_id = $8,
			grupo_investigacion_id = $9
		WHERE oid_trabajo_publicado = $10
		RETURNING oid_trabajo_publicado
	`

	args := []any{t.Titulo, t.ISSN, t.Editorial, t.NombreRevista, t.Pais, t.Estado, t.TipoTrabajoPublicadoID, t.AutorID, t.GrupoInvestigacionID, t.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&t.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTrabajoPublicado(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM trabajos_publicados WHERE oid_trabajo_publicado = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateTrabajoPresentado(t *domain.TrabajoPresentado) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO trabajos_presentados (ciudad, fecha_inicio, nombre_reunion, titulo_trabajo, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING oid_trabajo_presentado
	`

	args := []any{t.Ciudad, t.FechaInicio, t.NombreReunion, t.TituloTrabajo, t.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&t.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTrabajoPresentado(id int64) (*domain.TrabajoPresentado, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT ciudad, fecha_inicio, nombre_reunion, titulo_trabajo, grupo_investigacion_id
		FROM trabajos_presentados WHERE oid_trabajo_presentado = $1
	`

	t := &domain.TrabajoPresentado{
		ID: id,
	}
	dst := []any{&t.Ciudad, &t.FechaInicio, &t.NombreReunion, &t.TituloTrabajo, &t.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Repository) GetTrabajosPresentados(limit, offset int) ([]*domain.TrabajoPresentado, int, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	total := 0
	if err := r.dbpool.QueryRowContext(ctx, `SELECT COUNT(*) FROM trabajos_presentados`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT oid_trabajo_presentado, ciudad, fecha_inicio, nombre_reunion, titulo_trabajo, grupo_investigacion_id
		FROM trabajos_presentados ORDER BY oid_trabajo_presentado
		LIMIT $1 OFFSET $2
	`

	rows, err := r.dbpool.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	trabajos := make([]*domain.TrabajoPresentado, 0)
	for rows.Next() {
		t := &domain.TrabajoPresentado{}
		dst := []any{&t.ID, &t.Ciudad, &t.FechaInicio, &t.NombreReunion, &t.TituloTrabajo, &t.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}
		trabajos = append(trabajos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return trabajos, total, nil
}

func (r *Repository) UpdateTrabajoPresentado(t *domain.TrabajoPresentado) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE trabajos_presentados
		SET ciudad = $1, fecha_inicio = $2, nombre_reunion = $3, titulo_trabajo = $4, grupo_investigacion_id = $5
		WHERE oid_trabajo_presentado = $6
		RETURNING oid_trabajo_presentado
	`

	args := []any{t.Ciudad, t.FechaInicio, t.NombreReunion, t.TituloTrabajo, t.GrupoInvestigacionID, t.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&t.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTrabajoPresentado(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM trabajos_presentados WHERE oid_trabajo_presentado = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
