package gostmt_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/gostmt"
)

var _ = Describe("gostmt", func() {
	Describe("ParseQfxDate()", func() {
		Context("when given a valid date string", func() {
			DescribeTable("should parse to a calendar date at midnight UTC.", func(input, expected string) {
				e, _ := time.Parse(time.RFC822Z, expected)
				got, err := gostmt.ParseQfxDate(input)
				Expect(err).To(Succeed())
				Expect(got).To(BeTemporally("==", e))
			},
				Entry("YYYYMMDD", "20191001", "01 Oct 19 00:00 +0000"),
				Entry("YYYYMMDDHHMMSS", "20171108090000", "08 Nov 17 00:00 +0000"),
				Entry("YYYYMMDDHHMMSS.f", "20170226120000.001", "26 Feb 17 00:00 +0000"),
				Entry("YYYYMMDDHHMMSS.f[z:Z]", "20170226120000.000[0:GMT]", "26 Feb 17 00:00 +0000"),
				Entry("negative zone offset", "20180313093000.000[-10:EDT]", "13 Mar 18 00:00 +0000"),
				Entry("fractional zone offset", "20230115000000[+5.30:IST]", "15 Jan 23 00:00 +0000"),
				Entry("zone offset without a name", "20230115235959[-5]", "15 Jan 23 00:00 +0000"),
				Entry("surrounding whitespace", " 20191001 ", "01 Oct 19 00:00 +0000"),
			)
			It("should never shift the date across a day boundary", func() {
				got, err := gostmt.ParseQfxDate("20230115235959[-5:EST]")
				Expect(err).To(Succeed())
				Expect(got.Year()).To(Equal(2023))
				Expect(got.Month()).To(Equal(time.January))
				Expect(got.Day()).To(Equal(15))
			})
		})
		Context("when given an invalid date string", func() {
			DescribeTable("should return an error.", func(input string) {
				got, err := gostmt.ParseQfxDate(input)
				Expect(got.IsZero()).To(BeTrue())
				Expect(err).To(MatchError("error - date string can not be parsed"))
			},
				Entry("Empty", ""),
				Entry("Invalid text", "test"),
				Entry("Invalid format", "2019/01/02"),
				Entry("Missing month and date", "2019"),
				Entry("Missing date", "2019-01"),
				Entry("Month out of range", "20191301"),
				Entry("Day out of range", "20190230"),
				Entry("Time out of range", "20190101256161"),
				Entry("Trailing junk", "20190101junk"),
			)
		})
	})
	Describe("FormatParser", func() {
		var parser gostmt.FormatParser
		BeforeEach(func() {
			parser = gostmt.DefaultRegistry().Get(gostmt.FormatQFX)
			Expect(parser).ToNot(BeNil())
		})
		Describe("Format()", func() {
			It("should identify the qfx format", func() {
				Expect(parser.Format()).To(Equal(gostmt.FormatQFX))
			})
		})
		Describe("IsSupported()", func() {
			DescribeTable("should sniff OFX markers", func(filename, content string, expected bool) {
				Expect(parser.IsSupported(filename, content)).To(Equal(expected))
			},
				Entry("root tag", "", "<OFX></OFX>", true),
				Entry("header keyword", "", "OFXHEADER:100\nVERSION:102", true),
				Entry("sgml data keyword", "", "DATA:OFXSGML", true),
				Entry("filename extension", "statement.qfx", "anything", true),
				Entry("unrelated content", "notes.txt", "just some notes", false),
			)
		})
		Describe("Parse()", func() {
			Context("when records are complete", func() {
				It("should extract every field from tag soup", func() {
					records, err := parser.Parse(`<OFX><BANKTRANLIST>` +
						`<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20230115<TRNAMT>-42.50<FITID>1001<CHECKNUM>204<NAME>COFFEE SHOP<MEMO>morning</STMTTRN>` +
						`</BANKTRANLIST></OFX>`)
					Expect(err).To(BeNil())
					Expect(records).To(HaveLen(1))
					Expect(records[0].Format).To(Equal(gostmt.FormatQFX))
					txn := records[0].Qfx
					Expect(txn).ToNot(BeNil())
					Expect(txn.Type).To(Equal(gostmt.DEBIT))
					Expect(txn.Posted.Format("2006-01-02")).To(Equal("2023-01-15"))
					Expect(txn.Amount.String()).To(Equal("-42.50"))
					Expect(txn.FitID).To(Equal("1001"))
					Expect(txn.CheckNum).To(Equal("204"))
					Expect(txn.Name).To(Equal("COFFEE SHOP"))
					Expect(txn.Memo).To(Equal("morning"))
				})
				It("should keep the amount text exactly as written", func() {
					records, err := parser.Parse(`<OFX><STMTTRN><DTPOSTED>20230101<TRNAMT>12.345</STMTTRN></OFX>`)
					Expect(err).To(BeNil())
					Expect(records[0].Qfx.Amount.String()).To(Equal("12.345"))
				})
				It("should prefer the payee aggregate name over a plain name", func() {
					records, err := parser.Parse(`<OFX><STMTTRN><DTPOSTED>20230101<TRNAMT>-1.00` +
						`<PAYEE><NAME>REAL PAYEE</PAYEE><NAME>FALLBACK</STMTTRN></OFX>`)
					Expect(err).To(BeNil())
					Expect(records[0].Qfx.Name).To(Equal("REAL PAYEE"))
				})
				It("should fall back to the plain name without a payee aggregate", func() {
					records, err := parser.Parse(`<OFX><STMTTRN><DTPOSTED>20230101<TRNAMT>-1.00<NAME>FALLBACK</STMTTRN></OFX>`)
					Expect(err).To(BeNil())
					Expect(records[0].Qfx.Name).To(Equal("FALLBACK"))
				})
				It("should find records in credit card statements", func() {
					records, err := parser.Parse(`<OFX><CREDITCARDMSGSRSV1><CCSTMTTRNRS><CCSTMTRS><BANKTRANLIST>` +
						`<STMTTRN><TRNTYPE>CREDIT<DTPOSTED>20230220<TRNAMT>100.00<FITID>CC01</STMTTRN>` +
						`</BANKTRANLIST></CCSTMTRS></CCSTMTTRNRS></CREDITCARDMSGSRSV1></OFX>`)
					Expect(err).To(BeNil())
					Expect(records).To(HaveLen(1))
					Expect(records[0].Qfx.Type).To(Equal(gostmt.CREDIT))
				})
				It("should flatten records from multiple transaction lists in document order", func() {
					records, err := parser.Parse(`<OFX>` +
						`<BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKTRANLIST>` +
						`<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20230101<TRNAMT>-1.00<FITID>A</STMTTRN>` +
						`</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1>` +
						`<CREDITCARDMSGSRSV1><CCSTMTTRNRS><CCSTMTRS><BANKTRANLIST>` +
						`<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20230102<TRNAMT>-2.00<FITID>B</STMTTRN>` +
						`</BANKTRANLIST></CCSTMTRS></CCSTMTTRNRS></CREDITCARDMSGSRSV1>` +
						`</OFX>`)
					Expect(err).To(BeNil())
					Expect(records).To(HaveLen(2))
					Expect(records[0].Qfx.FitID).To(Equal("A"))
					Expect(records[1].Qfx.FitID).To(Equal("B"))
				})
				It("should return no records for a document without transactions", func() {
					records, err := parser.Parse(`<OFX><SIGNONMSGSRSV1></SIGNONMSGSRSV1></OFX>`)
					Expect(err).To(BeNil())
					Expect(records).To(BeEmpty())
				})
			})
			Context("when records are incomplete", func() {
				It("should report a missing posted date with the record index", func() {
					_, err := parser.Parse(`<OFX><BANKTRANLIST>` +
						`<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20230101<TRNAMT>-1.00</STMTTRN>` +
						`<STMTTRN><TRNTYPE>DEBIT<TRNAMT>-2.00</STMTTRN>` +
						`</BANKTRANLIST></OFX>`)
					var merr *gostmt.MissingMandatoryFieldError
					Expect(errors.As(err, &merr)).To(BeTrue())
					Expect(merr.Field).To(Equal("DTPOSTED"))
					Expect(merr.Index).To(Equal(1))
				})
				It("should report a missing amount", func() {
					_, err := parser.Parse(`<OFX><STMTTRN><DTPOSTED>20230101</STMTTRN></OFX>`)
					var merr *gostmt.MissingMandatoryFieldError
					Expect(errors.As(err, &merr)).To(BeTrue())
					Expect(merr.Field).To(Equal("TRNAMT"))
					Expect(merr.Index).To(Equal(0))
				})
				It("should treat an empty posted date as missing", func() {
					_, err := parser.Parse(`<OFX><STMTTRN><DTPOSTED></DTPOSTED><TRNAMT>-1.00</STMTTRN></OFX>`)
					var merr *gostmt.MissingMandatoryFieldError
					Expect(errors.As(err, &merr)).To(BeTrue())
					Expect(merr.Field).To(Equal("DTPOSTED"))
				})
				It("should report an unparsable date with the offending value", func() {
					_, err := parser.Parse(`<OFX><STMTTRN><DTPOSTED>not-a-date<TRNAMT>-1.00</STMTTRN></OFX>`)
					var derr *gostmt.DateParseError
					Expect(errors.As(err, &derr)).To(BeTrue())
					Expect(derr.Value).To(Equal("not-a-date"))
					Expect(derr.Index).To(Equal(0))
				})
				It("should report an unparsable amount with the offending value", func() {
					_, err := parser.Parse(`<OFX><STMTTRN><DTPOSTED>20230101<TRNAMT>12,00</STMTTRN></OFX>`)
					var aerr *gostmt.AmountParseError
					Expect(errors.As(err, &aerr)).To(BeTrue())
					Expect(aerr.Value).To(Equal("12,00"))
					Expect(aerr.Index).To(Equal(0))
				})
			})
		})
	})
})
