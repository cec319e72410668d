package views

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The key is the English text.
const (
	MsgCertificateNotFound = "No certificate matches that number. Please check it and try again."
	MsgCertificateError    = "The lookup failed. Please try again later."
	MsgCertificateRequired = "Enter both the certificate number and the passcode."
	MsgTooManyLookups      = "Too many lookups. Please wait a minute and try again."
	MsgCertificateNumber   = "Certificate number"
	MsgPasscode            = "Passcode"
	MsgSearch              = "Search"
	MsgCertificateHeading  = "Certificate of Authenticity"
	MsgNotFoundTitle       = "Page not found"
	MsgNotFoundBody        = "The page you are looking for does not exist."
	MsgServerErrorTitle    = "Something went wrong"
	MsgServerErrorBody     = "Please try again in a moment."
	MsgProductNotFound     = "We could not find a product called %q."
	MsgBackToCollection    = "Back to the collection"
	MsgDesignedBy          = "Designed by %s"
	MsgRelated             = "You may also like"
	MsgAllCategories       = "All"
	MsgDesigners           = "Designers"
	MsgNoItems             = "Nothing to show yet."
	MsgFounder             = "Founder"
	MsgMeetTheTeam         = "Meet the team"
	MsgExplore             = "Explore the collection"
	MsgVerify              = "Verify a certificate"
	MsgName                = "Name"
	MsgEmail               = "Email"
	MsgSubject             = "Subject"
	MsgMessage             = "Message"
	MsgSend                = "Send"
)

var supported = []language.Tag{language.English, language.SimplifiedChinese}

var matcher = language.NewMatcher(supported)

func init() {
	zh := language.SimplifiedChinese
	for key, msg := range map[string]string{
		MsgCertificateNotFound: "未找到相关证书信息，请核对证书编号。",
		MsgCertificateError:    "查询出错，请稍后重试。",
		MsgCertificateRequired: "请输入证书编号和防伪密码。",
		MsgTooManyLookups:      "查询过于频繁，请稍后再试。",
		MsgCertificateNumber:   "请输入证书编号",
		MsgPasscode:            "请输入防伪密码",
		MsgSearch:              "立即查询",
		MsgCertificateHeading:  "鉴定证书",
		MsgNotFoundTitle:       "页面不存在",
		MsgNotFoundBody:        "您访问的页面不存在。",
		MsgServerErrorTitle:    "出错了",
		MsgServerErrorBody:     "请稍后重试。",
		MsgProductNotFound:     "未找到名为 %q 的藏品。",
		MsgBackToCollection:    "返回馆藏",
		MsgDesignedBy:          "设计：%s",
		MsgRelated:             "相关藏品",
		MsgAllCategories:       "全部",
		MsgDesigners:           "设计师",
		MsgNoItems:             "暂无内容。",
		MsgFounder:             "公司创始人",
		MsgMeetTheTeam:         "领导团队",
		MsgExplore:             "浏览馆藏",
		MsgVerify:              "证书查询",
		MsgName:                "姓名",
		MsgEmail:               "电子邮箱",
		MsgSubject:             "主题",
		MsgMessage:             "留言内容",
		MsgSend:                "发送信息",
	} {
		if err := message.SetString(zh, key, msg); err != nil {
			panic(err)
		}
	}
}

// Printer returns a message printer for a brand locale. Unknown locales get
// English.
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	_, i, _ := matcher.Match(tag)
	return message.NewPrinter(supported[i])
}

// T translates key for locale, formatting args into it.
func T(locale, key string, args ...any) string {
	return Printer(locale).Sprintf(key, args...)
}
