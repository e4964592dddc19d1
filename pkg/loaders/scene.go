package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
)

// SceneOptions controls how a scene file is turned into a world
type SceneOptions struct {
	BaseDir        string      // Directory texture paths are resolved against
	BulbRadius     float64     // Radius of the spheres standing in for point lights
	BulbIntensity  float64     // Emission scale applied to light colors
	Images         *ImageCache // Shared texture cache, created on demand when nil
	StrictTextures bool        // Fail on unreadable textures instead of rendering them cyan
}

// DefaultSceneOptions returns the bulb settings used when none are configured
func DefaultSceneOptions() SceneOptions {
	return SceneOptions{
		BulbRadius:    10,
		BulbIntensity: 4,
	}
}

// Scene is the result of loading a scene file
type Scene struct {
	Eye        core.Vec3
	LookAt     core.Vec3
	Up         core.Vec3
	VFov       float64
	Background core.Vec3 // Color of the ambient light
	World      *geometry.World
	Lights     int // Number of bulbs added to World
}

// Apply copies the view and background of the scene into config
func (s *Scene) Apply(config renderer.CameraConfig) renderer.CameraConfig {
	config.Center = s.Eye
	config.LookAt = s.LookAt
	config.Up = s.Up
	config.VFov = s.VFov
	config.Background = s.Background
	return config
}

// LoadSceneFile parses the scene file at filename; texture paths in the file
// are resolved relative to its directory unless opts.BaseDir is set
func LoadSceneFile(filename string, opts SceneOptions) (*Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	if opts.BaseDir == "" {
		opts.BaseDir = filepath.Dir(filename)
	}

	scene, err := LoadScene(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return scene, nil
}

// LoadScene parses a whitespace separated scene description:
//
//	camera     eye(3) lookat(3) up(3) fov
//	lights     N, then N × position(3) color(3) attenuation(3); the first is ambient
//	pigments   N, then solid rgb | checker rgb rgb size | texmap path s(4) t(4)
//	materials  N, then ka kd ks alpha kr kt ior
//	objects    N, then pigment material (sphere xyz r | polyhedron F then F × abcd)
//
// Text after '#' on a line is ignored.
func LoadScene(r io.Reader, opts SceneOptions) (*Scene, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	if opts.Images == nil {
		if opts.Images, err = NewImageCache(0); err != nil {
			return nil, err
		}
	}

	p := &deckParser{tokens: tokens, opts: opts}
	return p.parse()
}

type token struct {
	text string
	line int
}

func tokenize(r io.Reader) ([]token, error) {
	var tokens []token

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.Fields(text) {
			tokens = append(tokens, token{text: field, line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return tokens, nil
}

type deckParser struct {
	tokens    []token
	pos       int
	opts      SceneOptions
	pigments  []material.ColorSource
	materials []material.Coefficients
}

func (p *deckParser) lastLine() int {
	if p.pos == 0 || len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[min(p.pos, len(p.tokens))-1].line
}

func (p *deckParser) next(what string) (token, error) {
	if p.pos >= len(p.tokens) {
		return token{}, fmt.Errorf("line %d: %w: expected %s", p.lastLine(), ErrUnexpectedEOF, what)
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, nil
}

func (p *deckParser) float(what string) (float64, error) {
	t, err := p.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w: %s %q", t.line, ErrBadNumber, what, t.text)
	}
	return v, nil
}

func (p *deckParser) vec3(what string) (core.Vec3, error) {
	var xyz [3]float64
	for i := range xyz {
		v, err := p.float(what)
		if err != nil {
			return core.Vec3{}, err
		}
		xyz[i] = v
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

func (p *deckParser) integer(what string) (int, error) {
	t, err := p.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w: %s %q", t.line, ErrBadNumber, what, t.text)
	}
	return v, nil
}

func (p *deckParser) count(what string) (int, error) {
	n, err := p.integer(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("line %d: %w: %s %d", p.lastLine(), ErrBadCount, what, n)
	}
	return n, nil
}

func (p *deckParser) parse() (*Scene, error) {
	scene := &Scene{World: geometry.NewWorld()}

	steps := []func(*Scene) error{
		p.parseCamera,
		p.parseLights,
		p.parsePigments,
		p.parseMaterials,
		p.parseObjects,
	}
	for _, step := range steps {
		if err := step(scene); err != nil {
			return nil, err
		}
	}

	if p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		logger.Warningf("line %d: ignoring %d trailing tokens", t.line, len(p.tokens)-p.pos)
	}

	logger.Infof("loaded scene: %d shapes, %d lights, %d pigments, %d materials",
		scene.World.Len(), scene.Lights, len(p.pigments), len(p.materials))
	return scene, nil
}

func (p *deckParser) parseCamera(scene *Scene) error {
	var err error
	if scene.Eye, err = p.vec3("camera eye"); err != nil {
		return err
	}
	if scene.LookAt, err = p.vec3("camera look-at"); err != nil {
		return err
	}
	if scene.Up, err = p.vec3("camera up"); err != nil {
		return err
	}
	scene.VFov, err = p.float("camera fov")
	return err
}

func (p *deckParser) parseLights(scene *Scene) error {
	n, err := p.count("light count")
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		position, err := p.vec3("light position")
		if err != nil {
			return err
		}
		color, err := p.vec3("light color")
		if err != nil {
			return err
		}
		// Attenuation coefficients are read but bulbs do not fall off
		if _, err := p.vec3("light attenuation"); err != nil {
			return err
		}

		if i == 0 {
			scene.Background = color
			continue
		}
		if p.opts.BulbRadius <= 0 {
			logger.Warningf("skipping light %d: bulb radius is %v", i, p.opts.BulbRadius)
			continue
		}
		light := material.NewLight(color, p.opts.BulbIntensity)
		scene.World.Add(geometry.NewBulb(position, p.opts.BulbRadius, light))
		scene.Lights++
	}

	return nil
}

func (p *deckParser) parsePigments(scene *Scene) error {
	n, err := p.count("pigment count")
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		kind, err := p.next("pigment type")
		if err != nil {
			return err
		}

		var pigment material.ColorSource
		switch kind.text {
		case "solid":
			c, err := p.vec3("solid color")
			if err != nil {
				return err
			}
			pigment = material.NewSolidColor(c)

		case "checker":
			even, err := p.vec3("checker color")
			if err != nil {
				return err
			}
			odd, err := p.vec3("checker color")
			if err != nil {
				return err
			}
			size, err := p.float("checker size")
			if err != nil {
				return err
			}
			pigment = material.NewCheckerTexture(size, even, odd)

		case "texmap":
			path, err := p.next("texture path")
			if err != nil {
				return err
			}
			// Planar mapping vectors; textures are mapped by surface UV instead
			for j := 0; j < 8; j++ {
				if _, err := p.float("texture mapping"); err != nil {
					return err
				}
			}
			if pigment, err = p.loadTexture(path); err != nil {
				return err
			}

		default:
			return fmt.Errorf("line %d: %w: pigment %q", kind.line, ErrUnknownKeyword, kind.text)
		}

		p.pigments = append(p.pigments, pigment)
	}

	return nil
}

func (p *deckParser) loadTexture(path token) (material.ColorSource, error) {
	filename := path.text
	if !filepath.IsAbs(filename) && p.opts.BaseDir != "" {
		filename = filepath.Join(p.opts.BaseDir, filename)
	}

	pixels, err := p.opts.Images.Load(filename)
	if err != nil {
		if p.opts.StrictTextures {
			return nil, fmt.Errorf("line %d: %w", path.line, err)
		}
		logger.Warningf("line %d: texture %s unavailable, rendering it cyan: %v", path.line, filename, err)
		return material.NewImageTexture(nil), nil
	}
	return material.NewImageTexture(pixels), nil
}

func (p *deckParser) parseMaterials(scene *Scene) error {
	n, err := p.count("material count")
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		var values [7]float64
		for j := range values {
			if values[j], err = p.float("material coefficient"); err != nil {
				return err
			}
		}
		p.materials = append(p.materials, material.Coefficients{
			Ambient:          values[0],
			Diffuse:          values[1],
			Specular:         values[2],
			SpecularExponent: values[3],
			Reflective:       values[4],
			Refractive:       values[5],
			RefractionIndex:  values[6],
		})
	}

	return nil
}

func (p *deckParser) parseObjects(scene *Scene) error {
	n, err := p.count("object count")
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		pigmentIndex, err := p.integer("pigment index")
		if err != nil {
			return err
		}
		if pigmentIndex < 0 || pigmentIndex >= len(p.pigments) {
			return fmt.Errorf("line %d: %w: pigment %d of %d", p.lastLine(), ErrBadIndex, pigmentIndex, len(p.pigments))
		}
		materialIndex, err := p.integer("material index")
		if err != nil {
			return err
		}
		if materialIndex < 0 || materialIndex >= len(p.materials) {
			return fmt.Errorf("line %d: %w: material %d of %d", p.lastLine(), ErrBadIndex, materialIndex, len(p.materials))
		}

		mat := material.NewMaterial(p.pigments[pigmentIndex], p.materials[materialIndex])

		kind, err := p.next("object type")
		if err != nil {
			return err
		}
		switch kind.text {
		case "sphere":
			center, err := p.vec3("sphere center")
			if err != nil {
				return err
			}
			radius, err := p.float("sphere radius")
			if err != nil {
				return err
			}
			scene.World.Add(geometry.NewSphere(center, radius, mat))

		case "polyhedron":
			faces, err := p.count("face count")
			if err != nil {
				return err
			}
			planes := make([]geometry.Plane, 0, faces)
			for j := 0; j < faces; j++ {
				var abcd [4]float64
				for k := range abcd {
					if abcd[k], err = p.float("face plane"); err != nil {
						return err
					}
				}
				planes = append(planes, geometry.NewPlane(abcd[0], abcd[1], abcd[2], abcd[3]))
			}
			scene.World.Add(geometry.NewPolyhedron(planes, mat))

		default:
			return fmt.Errorf("line %d: %w: object %q", kind.line, ErrUnknownKeyword, kind.text)
		}
	}

	return nil
}
