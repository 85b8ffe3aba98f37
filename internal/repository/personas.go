package repository

import (
	"github.com/utn-dasi/sigrupos/backend/internal/domain"
)

func (r *Repository) CreatePersona(p *domain.Persona) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO personas (nombre, apellido, correo, contrasena_hash, horas_semanales, tipo_de_personal_id, grupo_investigacion_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING oid_persona
	`

	args := []any{p.Nombre, p.Apellido, p.Correo, p.ContrasenaHash, p.HorasSemanales, p.TipoDePersonalID, p.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPersonaByID(id int64) (*domain.Persona, error) {
	query := `
		SELECT p.nombre, p.apellido, p.correo, p.contrasena_hash, p.horas_semanales, p.tipo_de_personal_id, tp.nombre, p.grupo_investigacion_id
		FROM personas p
		LEFT JOIN tipos_de_personal tp ON p.tipo_de_personal_id = tp.id
		WHERE p.oid_persona = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	p := &domain.Persona{
		ID: id,
	}

	dst := []any{&p.Nombre, &p.Apellido, &p.Correo, &p.ContrasenaHash, &p.HorasSemanales, &p.TipoDePersonalID, &p.TipoDePersonalNombre, &p.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) GetPersonaByCorreo(correo string) (*domain.Persona, error) {
	query := `
		SELECT p.oid_persona, p.nombre, p.apellido, p.contrasena_hash, p.horas_semanales, p.tipo_de_personal_id, tp.nombre, p.grupo_investigacion_id
		FROM personas p
		LEFT JOIN tipos_de_personal tp ON p.tipo_de_personal_id = tp.id
		WHERE p.correo = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	p := &domain.Persona{
		Correo: correo,
	}

	dst := []any{&p.ID, &p.Nombre, &p.Apellido, &p.ContrasenaHash, &p.HorasSemanales, &p.TipoDePersonalID, &p.TipoDePersonalNombre, &p.GrupoInvestigacionID}
	if err := r.dbpool.QueryRowContext(ctx, query, correo).Scan(dst...); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) GetAllPersonas() ([]*domain.Persona, error) {
	query := `
		SELECT p.oid_persona, p.nombre, p.apellido, p.correo, p.horas_semanales, p.tipo_de_personal_id, tp.nombre, p.grupo_investigacion_id
		FROM personas p
		LEFT JOIN tipos_de_personal tp ON p.tipo_de_personal_id = tp.id
		ORDER BY p.oid_persona
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	personas := make([]*domain.Persona, 0)
	for rows.Next() {
		p := &domain.Persona{}
		dst := []any{&p.ID, &p.Nombre, &p.Apellido, &p.Correo, &p.HorasSemanales, &p.TipoDePersonalID, &p.TipoDePersonalNombre, &p.GrupoInvestigacionID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return personas, nil
}

func (r *Repository) UpdatePersona(p *domain.Persona) error {
	query := `
		UPDATE personas
		SET
			nombre = $1,
			apellido = $2,
			correo = $3,
			contrasena_hash = $4,
			horas_semanales = $5,
			tipo_de_personal_id = $6,
			grupo_investigacion_id = $7
		WHERE oid_persona = $8
		RETURNING oid_persona
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{p.Nombre, p.Apellido, p.Correo, p.ContrasenaHash, p.HorasSemanales, p.TipoDePersonalID, p.GrupoInvestigacionID, p.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePersona(id int64) error {
	query := `
		DELETE FROM personas WHERE oid_persona = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckCorreoIfExists(correo string) (bool, error) {
	isExists := false

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM personas WHERE correo = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, correo).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}

func (r *Repository) CreateTipoDePersonal(tp *domain.TipoDePersonal) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO tipos_de_personal (nombre)
		VALUES ($1)
		RETURNING id
	`

	if err := r.dbpool.QueryRowContext(ctx, query, tp.Nombre).Scan(&tp.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTipoDePersonal(id int64) (*domain.TipoDePersonal, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT nombre FROM tipos_de_personal WHERE id = $1
	`

	tp := &domain.TipoDePersonal{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&tp.Nombre); err != nil {
		return nil, err
	}

	return tp, nil
}

func (r *Repository) GetAllTiposDePersonal() ([]*domain.TipoDePersonal, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, nombre FROM tipos_de_personal ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tipos := make([]*domain.TipoDePersonal, 0)
	for rows.Next() {
		tp := &domain.TipoDePersonal{}
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

func (r *Repository) UpdateTipoDePersonal(tp *domain.TipoDePersonal) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE tipos_de_personal SET nombre = $1 WHERE id = $2 RETURNING id
	`

	if err := r.dbpool.QueryRowContext(ctx, query, tp.Nombre, tp.ID).Scan(&tp.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTipoDePersonal(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM tipos_de_personal WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
