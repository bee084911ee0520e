package gostmt

import (
	"regexp"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

// TransactionType is a transaction type as per the OFX Spec 2.2 Section 11.4.4.3
// https://www.ofx.net/downloads/OFX%202.2.pdf
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDENT      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	OTHER         TransactionType = "OTHER"
)

// Element names from the OFX Spec 2.2 Section 11.4.4.1.
const (
	tagTransaction = "STMTTRN"
	tagType        = "TRNTYPE"
	tagPosted      = "DTPOSTED"
	tagAmount      = "TRNAMT"
	tagFitID       = "FITID"
	tagName        = "NAME"
	tagPayee       = "PAYEE"
	tagMemo        = "MEMO"
	tagCheckNum    = "CHECKNUM"
)

// QfxTransaction is one STMTTRN record as written in the file. Type keeps
// the raw TRNTYPE value without validation, Posted the literal calendar
// date, Amount the exact decimal with its original scale.
type QfxTransaction struct {
	Type     TransactionType `json:"trntype"`
	Posted   time.Time       `json:"dtposted"`
	Amount   decimal.Decimal `json:"trnamt"`
	FitID    string          `json:"fitid,omitempty"`
	Name     string          `json:"name,omitempty"`
	Memo     string          `json:"memo,omitempty"`
	CheckNum string          `json:"checknum,omitempty"`
}

var dateRegex = regexp.MustCompile(`^(?P<date>\d{8})(?P<time>\d{6})?(?:\.(?P<frac>\d{3}))?(?:\[[-+]?\d{1,2}(?:\.\d+)?(?::\w+)?\])?$`)

// ParseQfxDate parses the given OFX formatted date string to a time.Time at
// midnight UTC. OFX dates are calendar dates at heart, so a trailing time of
// day, fractional seconds or timezone suffix is validated and discarded
// rather than shifted into another day.
func ParseQfxDate(d string) (time.Time, error) {
	var (
		format = "20060102"
		parts  = dateRegex.FindStringSubmatch(strings.TrimSpace(d))
	)
	if parts == nil {
		return time.Time{}, errDateUnparsable
	}
	glog.V(3).Infof("parts:%q format:%s", parts, format)
	if parts[2] != "" {
		if _, err := time.Parse("150405", parts[2]); err != nil {
			return time.Time{}, errDateUnparsable
		}
	}
	t, err := time.Parse(format, parts[1])
	if err != nil {
		return time.Time{}, errDateUnparsable
	}
	return t, nil
}

// extractTransactions collects every STMTTRN record in the tree, wherever
// it sits, in document order. Multiple transaction lists flatten into one
// sequence.
func extractTransactions(root *RawNode) ([]QfxTransaction, error) {
	records := root.Find(tagTransaction)
	glog.V(3).Infof("found %d transaction records", len(records))
	txns := make([]QfxTransaction, 0, len(records))
	for i, record := range records {
		txn, err := extractTransaction(record, i)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// extractTransaction reads one STMTTRN node. DTPOSTED and TRNAMT are
// mandatory, everything else is carried when present. index identifies the
// record in error reports.
func extractTransaction(record *RawNode, index int) (QfxTransaction, error) {
	posted, ok := record.Text(tagPosted)
	if !ok || posted == "" {
		return QfxTransaction{}, &MissingMandatoryFieldError{Field: tagPosted, Index: index}
	}
	date, err := ParseQfxDate(posted)
	if err != nil {
		return QfxTransaction{}, &DateParseError{Field: tagPosted, Value: posted, Index: index}
	}
	raw, ok := record.Text(tagAmount)
	if !ok || raw == "" {
		return QfxTransaction{}, &MissingMandatoryFieldError{Field: tagAmount, Index: index}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return QfxTransaction{}, &AmountParseError{Field: tagAmount, Value: raw, Index: index}
	}

	txn := QfxTransaction{Posted: date, Amount: amount}
	if v, ok := record.Text(tagType); ok {
		txn.Type = TransactionType(v)
	}
	txn.FitID, _ = record.Text(tagFitID)
	txn.Memo, _ = record.Text(tagMemo)
	txn.CheckNum, _ = record.Text(tagCheckNum)
	txn.Name = payeeName(record)
	glog.V(3).Infof("record %d: %s %s %s", index, txn.Type, txn.Posted.Format("20060102"), txn.Amount)
	return txn, nil
}

// payeeName resolves the payee for a record. A PAYEE aggregate's NAME wins
// over a plain NAME element.
func payeeName(record *RawNode) string {
	if p := record.Child(tagPayee); p != nil {
		if v, ok := p.Text(tagName); ok && v != "" {
			return v
		}
		if p.Value != "" {
			return p.Value
		}
	}
	v, _ := record.Text(tagName)
	return v
}

// qfxParser reads OFX/QFX statements in either dialect.
type qfxParser struct{}

// Format returns the format this parser handles.
func (qfxParser) Format() FileFormat { return FormatQFX }

// IsSupported sniffs the filename and content for OFX markers. It never
// parses and never fails.
func (qfxParser) IsSupported(filename, content string) bool {
	if hasQfxExtension(filename) {
		return true
	}
	return ofxTagIndex(content) != -1 ||
		strings.Contains(content, "OFXHEADER:") ||
		strings.Contains(content, "DATA:OFXSGML")
}

// ParseQfxDocument builds the raw element tree for OFX content in either
// dialect, without extracting records. Useful for reading document parts
// this package does not model, like balances or signon responses.
func ParseQfxDocument(content string) (*RawNode, error) {
	var (
		root *RawNode
		err  error
	)
	switch detectDialect(content) {
	case dialectXML:
		glog.V(3).Infof("parsing xml dialect")
		root, err = parseXML(content)
	default:
		glog.V(3).Infof("parsing sgml dialect")
		root, err = parseSGML(content)
	}
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(root.Name, "OFX") {
		return nil, &SyntaxError{Fragment: "<" + root.Name + ">", Err: errNoRootElement}
	}
	return root, nil
}

// Parse builds the raw tree with the dialect front end the content calls
// for, then extracts transaction records from it.
func (qfxParser) Parse(content string) ([]ParsedTransaction, error) {
	root, err := ParseQfxDocument(content)
	if err != nil {
		return nil, err
	}
	txns, err := extractTransactions(root)
	if err != nil {
		return nil, err
	}
	parsed := make([]ParsedTransaction, 0, len(txns))
	for _, txn := range txns {
		txn := txn
		parsed = append(parsed, ParsedTransaction{Format: FormatQFX, Qfx: &txn})
	}
	return parsed, nil
}
