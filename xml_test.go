package gostmt_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/gostmt"
)

const xmlProlog = "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n" +
	"<?OFX OFXHEADER=\"200\" VERSION=\"211\" SECURITY=\"NONE\" OLDFILEUID=\"NONE\" NEWFILEUID=\"NONE\"?>\n"

var _ = Describe("gostmt", func() {
	Describe("ParseQfxDocument()", func() {
		Context("when given a strict XML document", func() {
			DescribeTable("should build the element tree", func(content, expected string) {
				root, err := gostmt.ParseQfxDocument(xmlProlog + content)
				Expect(err).To(BeNil())
				Expect(root).ToNot(BeNil())
				Expect(root.String()).To(Equal(expected))
			},
				Entry("when the document is empty",
					`<OFX></OFX>`,
					`<OFX></OFX>`),
				Entry("when elements nest with indentation",
					"<OFX>\n  <STATUS>\n    <CODE>0</CODE>\n    <SEVERITY>INFO</SEVERITY>\n  </STATUS>\n</OFX>",
					`<OFX><STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS></OFX>`),
				Entry("when elements are self closing",
					`<OFX><BANKMSGSRSV1/></OFX>`,
					`<OFX><BANKMSGSRSV1></BANKMSGSRSV1></OFX>`),
				Entry("when values carry entities",
					`<OFX><NAME>AT&amp;T</NAME></OFX>`,
					`<OFX><NAME>AT&T</NAME></OFX>`),
			)
			DescribeTable("should return a syntax error for malformed XML", func(content string) {
				root, err := gostmt.ParseQfxDocument(xmlProlog + content)
				Expect(root).To(BeNil())
				var serr *gostmt.SyntaxError
				Expect(errors.As(err, &serr)).To(BeTrue())
			},
				Entry("when end tags do not match", `<OFX><CODE>0</SEVERITY></OFX>`),
				Entry("when an end tag is missing", `<OFX><STATUS><CODE>0</CODE></OFX>`),
				Entry("when the document ends mid element", `<OFX><STATUS>`),
				Entry("when content follows the closed root", `<OFX></OFX><OFX></OFX>`),
				Entry("when the prolog stands alone", ``),
			)
			It("should not repair omitted end tags the way tag soup allows", func() {
				_, err := gostmt.ParseQfxDocument(xmlProlog + "<OFX><SIGNONMSGSRSV1></OFX>")
				Expect(err).To(HaveOccurred())
			})
			It("should accept a prolog that names a charset", func() {
				content := "<?xml version=\"1.0\" encoding=\"windows-1252\"?>\n<OFX><CURDEF>USD</CURDEF></OFX>"
				root, err := gostmt.ParseQfxDocument(content)
				Expect(err).To(BeNil())
				Expect(root.String()).To(Equal(`<OFX><CURDEF>USD</CURDEF></OFX>`))
			})
			It("should reject a document whose root is not OFX", func() {
				_, err := gostmt.ParseQfxDocument(xmlProlog + "<BANKMSGSRSV1></BANKMSGSRSV1>")
				Expect(err).To(MatchError(ContainSubstring("OFX tag not found")))
			})
		})
	})
})
