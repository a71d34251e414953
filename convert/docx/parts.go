package docx

import (
	"time"

	"github.com/beevik/etree"

	"docgen/document"
	"docgen/misc"
)

const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsAppProps      = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDC            = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsDCMIType      = "http://purl.org/dc/dcmitype/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relAppProps       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
)

func newXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func contentTypes() *etree.Document {
	doc := newXML()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	for _, d := range []struct{ ext, ct string }{
		{"rels", "application/vnd.openxmlformats-package.relationships+xml"},
		{"xml", "application/xml"},
	} {
		def := types.CreateElement("Default")
		def.CreateAttr("Extension", d.ext)
		def.CreateAttr("ContentType", d.ct)
	}

	for _, o := range []struct{ part, ct string }{
		{partDocument, "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
		{partStyles, "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		{partNumbering, "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"},
		{partCoreProps, "application/vnd.openxmlformats-package.core-properties+xml"},
		{partAppProps, "application/vnd.openxmlformats-officedocument.extended-properties+xml"},
	} {
		over := types.CreateElement("Override")
		over.CreateAttr("PartName", "/"+o.part)
		over.CreateAttr("ContentType", o.ct)
	}
	return doc
}

type relationship struct {
	id, typ, target string
}

func relationships(rels ...relationship) *etree.Document {
	doc := newXML()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsRelationships)
	for _, r := range rels {
		rel := root.CreateElement("Relationship")
		rel.CreateAttr("Id", r.id)
		rel.CreateAttr("Type", r.typ)
		rel.CreateAttr("Target", r.target)
	}
	return doc
}

func rootRelationships() *etree.Document {
	return relationships(
		relationship{"rId1", relOfficeDocument, partDocument},
		relationship{"rId2", relCoreProps, partCoreProps},
		relationship{"rId3", relAppProps, partAppProps},
	)
}

// documentRelationships targets are relative to word/.
func documentRelationships() *etree.Document {
	return relationships(
		relationship{"rId1", relStyles, "styles.xml"},
		relationship{"rId2", relNumbering, "numbering.xml"},
	)
}

const w3cdtf = "2006-01-02T15:04:05Z"

func coreProperties(meta document.Metadata) *etree.Document {
	doc := newXML()
	props := doc.CreateElement("cp:coreProperties")
	props.CreateAttr("xmlns:cp", nsCoreProps)
	props.CreateAttr("xmlns:dc", nsDC)
	props.CreateAttr("xmlns:dcterms", nsDCTerms)
	props.CreateAttr("xmlns:dcmitype", nsDCMIType)
	props.CreateAttr("xmlns:xsi", nsXSI)

	text := func(tag, value string) {
		if value != "" {
			props.CreateElement(tag).SetText(value)
		}
	}
	text("dc:title", meta.Title)
	text("dc:subject", meta.Subject)
	text("dc:creator", meta.Creator)
	text("dc:description", meta.Description)
	text("dc:identifier", meta.Identifier)
	text("dc:language", meta.Language)
	text("cp:lastModifiedBy", misc.GetAppName())

	created := meta.Created
	if created.IsZero() {
		created = time.Now()
	}
	stamp := created.UTC().Format(w3cdtf)
	for _, tag := range []string{"dcterms:created", "dcterms:modified"} {
		el := props.CreateElement(tag)
		el.CreateAttr("xsi:type", "dcterms:W3CDTF")
		el.SetText(stamp)
	}
	return doc
}

func appProperties() *etree.Document {
	doc := newXML()
	props := doc.CreateElement("Properties")
	props.CreateAttr("xmlns", nsAppProps)
	props.CreateElement("Application").SetText(misc.GetAppName() + " " + misc.GetVersion())
	props.CreateElement("DocSecurity").SetText("0")
	return doc
}
