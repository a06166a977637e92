// Package pipeline orchestrates document upload processing: validation,
// text extraction, skill matching, experience segmentation, accomplishment
// merging and skill-profile accumulation.
package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/careerforge/resume-tailor/internal/db"
	"github.com/careerforge/resume-tailor/internal/extraction"
	"github.com/careerforge/resume-tailor/internal/merge"
	"github.com/careerforge/resume-tailor/internal/profile"
	"github.com/careerforge/resume-tailor/internal/segment"
	"github.com/careerforge/resume-tailor/internal/skills"
	"github.com/careerforge/resume-tailor/internal/storage"
	"github.com/careerforge/resume-tailor/internal/types"
)

// Confidence scores recorded on the document, depending on whether text
// extraction produced anything usable.
const (
	confidenceExtracted = 0.8
	confidenceFailed    = 0.3
)

// extractConcurrency bounds the parallel text-extraction fan-out.
const extractConcurrency = 4

// Pipeline wires the heuristic extraction stages to persistence.
type Pipeline struct {
	db      *db.DB
	store   storage.BlobStore
	matcher *skills.Matcher
	seg     *segment.Segmenter
	limits  extraction.UploadLimits
}

// New constructs a Pipeline. The blob store may be a MemoryStore when S3
// is not configured.
func New(database *db.DB, store storage.BlobStore, matcher *skills.Matcher, limits extraction.UploadLimits) *Pipeline {
	return &Pipeline{
		db:      database,
		store:   store,
		matcher: matcher,
		seg:     segment.NewSegmenter(matcher),
		limits:  limits,
	}
}

// UploadFile is one file of a batch upload.
type UploadFile struct {
	Filename string
	Data     []byte
}

// UploadResult reports the outcome for one file. Err is set when the file
// was rejected or extraction failed; the rest of the batch is unaffected.
type UploadResult struct {
	Filename             string              `json:"filename"`
	Document             *types.RawDocument  `json:"document,omitempty"`
	ExperiencesCreated   int                 `json:"experiences_created"`
	AccomplishmentsAdded int                 `json:"accomplishments_added"`
	SkillsAdded          int                 `json:"skills_added"`
	Err                  error               `json:"-"`
	Error                string              `json:"error,omitempty"`
}

// staged holds the pure extraction output for one file before anything is
// persisted.
type staged struct {
	file       UploadFile
	text       string
	skillNames []string
	err        error
}

// ProcessUploads runs the full pipeline for a batch of files. Extraction is
// pure and fans out concurrently; persistence runs sequentially in input
// order so display ordering stays deterministic. A failed file is reported
// in its result and never aborts the batch.
func (p *Pipeline) ProcessUploads(ctx context.Context, ownerID uuid.UUID, files []UploadFile) []UploadResult {
	stages := make([]staged, len(files))

	var g errgroup.Group
	g.SetLimit(extractConcurrency)
	for i := range files {
		g.Go(func() error {
			stages[i] = p.extractOne(files[i])
			return nil
		})
	}
	// Extraction is pure and never returns a group error; per-file failures
	// live in their stage.
	_ = g.Wait()

	results := make([]UploadResult, len(files))
	for i, st := range stages {
		results[i] = p.persistOne(ctx, ownerID, st)
	}
	return results
}

// extractOne validates and extracts a single file without touching storage.
func (p *Pipeline) extractOne(file UploadFile) staged {
	st := staged{file: file}

	name := extraction.SanitizeFilename(file.Filename)
	st.file.Filename = name

	if err := p.limits.ValidateUpload(name, int64(len(file.Data))); err != nil {
		st.err = err
		return st
	}

	text, err := extraction.Extract(name, file.Data)
	if err != nil {
		st.err = err
		return st
	}

	st.text = extraction.CleanText(text)
	st.skillNames = p.matcher.MatchNames(st.text)
	return st
}

// persistOne stores the blob and document record, then runs segmentation,
// skill matching and accomplishment merging against the owner's current
// experience set.
func (p *Pipeline) persistOne(ctx context.Context, ownerID uuid.UUID, st staged) UploadResult {
	res := UploadResult{Filename: st.file.Filename}
	if st.err != nil {
		res.Err = st.err
		res.Error = st.err.Error()
		// Rejected files leave no records behind.
		return res
	}

	doc := &types.RawDocument{
		OwnerID:          ownerID,
		Filename:         st.file.Filename,
		MimeClass:        types.ClassifyFilename(st.file.Filename),
		ByteSize:         int64(len(st.file.Data)),
		SkillsIdentified: st.skillNames,
		ConfidenceScore:  confidenceFailed,
	}
	if strings.TrimSpace(st.text) != "" {
		doc.ConfidenceScore = confidenceExtracted
	}

	key := storage.OwnerKey(ownerID, st.file.Filename)
	if err := p.store.Put(ctx, key, st.file.Data, contentTypeFor(doc.MimeClass)); err != nil {
		// Blob storage is best-effort; the extracted records still land.
		log.Printf("blob store put failed for %s: %v", st.file.Filename, err)
	} else {
		doc.StoragePath = key
	}

	if err := p.db.CreateDocument(ctx, doc); err != nil {
		res.Err = err
		res.Error = err.Error()
		return res
	}
	res.Document = doc

	if err := p.ingestText(ctx, ownerID, doc, st, &res); err != nil {
		res.Err = err
		res.Error = err.Error()
	}
	return res
}

// ingestText persists the heuristic outputs for one extracted document.
func (p *Pipeline) ingestText(ctx context.Context, ownerID uuid.UUID, doc *types.RawDocument, st staged, res *UploadResult) error {
	existing, err := p.db.ListExperiences(ctx, ownerID)
	if err != nil {
		return err
	}

	// New experiences found in this document. Organizations the owner
	// already has are not duplicated; the document is recorded as an
	// additional source instead, which keeps the existing experience
	// alive if another source document is deleted later.
	for _, exp := range p.seg.Segment(st.text) {
		if prior := findByOrganization(existing, exp.Organization); prior != nil {
			if err := p.db.AddSourceDocument(ctx, ownerID, prior.ID, doc.ID); err != nil {
				return err
			}
			continue
		}
		exp.OwnerID = ownerID
		exp.ExtractedFrom = []uuid.UUID{doc.ID}
		if err := p.db.CreateExperience(ctx, &exp); err != nil {
			return err
		}
		existing = append(existing, exp)
		res.ExperiencesCreated++
	}

	// Attribute matched skills to the experiences whose sections mention
	// them, then harvest accomplishment candidates.
	for id, evidence := range merge.MatchSkills(st.text, existing, st.skillNames) {
		exp := findExperience(existing, id)
		if exp == nil {
			continue
		}
		exp.Skills = append(exp.Skills, evidence...)
		if err := p.db.UpdateExperienceSkills(ctx, ownerID, id, exp.Skills); err != nil {
			return err
		}
	}

	harvested := merge.Merge(st.text, existing)
	for i := range harvested {
		if err := p.db.AddAccomplishments(ctx, harvested[i].ExperienceID, harvested[i:i+1]); err != nil {
			return err
		}
		res.AccomplishmentsAdded++
	}

	// Accumulate the owner's skill profile.
	if len(st.skillNames) > 0 {
		prof, err := p.db.GetSkillProfile(ctx, ownerID)
		if err != nil {
			return err
		}
		if prof == nil {
			prof = &types.SkillProfile{OwnerID: ownerID}
		}
		res.SkillsAdded = profile.MergeSkills(prof, st.skillNames)
		if res.SkillsAdded > 0 {
			if err := p.db.UpsertSkillProfile(ctx, prof); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasOrganization(experiences []types.Experience, org string) bool {
	return findByOrganization(experiences, org) != nil
}

func findByOrganization(experiences []types.Experience, org string) *types.Experience {
	for i := range experiences {
		if strings.EqualFold(experiences[i].Organization, org) {
			return &experiences[i]
		}
	}
	return nil
}

func findExperience(experiences []types.Experience, id uuid.UUID) *types.Experience {
	for i := range experiences {
		if experiences[i].ID == id {
			return &experiences[i]
		}
	}
	return nil
}

func contentTypeFor(class types.MimeClass) string {
	switch class {
	case types.MimeClassDocx:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}
