// Package analysis renders the rule-based market commentary shown in
// the dashboard's AI panel. The output is an HTML fragment styled with
// the dashboard's CSS variables; all numbers are derived from a single
// ticker row, no external model is consulted.
package analysis

import (
	"fmt"
	"math"

	"github.com/Hans010101/Crypto-Trading/internal/model"
)

// Unavailable is returned when the requested contract has no live row
// in the ticker board.
const Unavailable = "无法获取该交易对的实时数据，AI 暂时无法生成分析建议。"

// HighRatio marks a long/short ratio that overflowed upstream; it is
// rendered as 极高 instead of a number.
const HighRatio = 9999.0

// fmtPrice formats a price with precision scaled to its magnitude, so
// sub-cent contracts keep meaningful digits.
func fmtPrice(p float64) string {
	switch {
	case p < 0.001:
		return fmt.Sprintf("%.6f", p)
	case p < 1:
		return fmt.Sprintf("%.4f", p)
	default:
		return fmt.Sprintf("%.2f", p)
	}
}

// Generate builds the four-section commentary for one ticker row.
func Generate(t model.TickerRow) string {
	price := t.Price
	change := t.Change24h

	high := t.High24h
	if high <= price {
		high = price * 1.05
	}
	low := t.Low24h
	if low >= price {
		low = price * 0.95
	}

	res1 := fmtPrice(high)
	res2 := fmtPrice(high * 1.05)
	sup1 := fmtPrice(low + (price-low)*0.5)
	sup2 := fmtPrice(low)

	volText := fmt.Sprintf("%.2f 百万", t.Volume24h/1e6)
	if t.Volume24h >= 1e8 {
		volText = fmt.Sprintf("%.2f 亿", t.Volume24h/1e8)
	}
	techStatus, techAction := "缩量下跌后的低位震荡期", "杀跌"
	if change >= 0 {
		techStatus, techAction = "放量拉升后的高位整理期", "追涨"
	}

	p1 := fmt.Sprintf(`
    <div style="margin-bottom:14px;"><strong style="color:var(--text-primary);"><span style="color:var(--accent-blue); margin-right:4px;">1.</span> 技术信号与压力</strong><br>
    <div style="color:var(--text-secondary); margin-top:4px;">
    - 价格处于%s，<span style="color:var(--text-primary);font-weight:600;">%s</span> 价位对应 %s 成交量，为当前核心支撑区。<br>
    - 压力位参考: <span style="color:var(--loss)">%s</span> (近期高点), <span style="color:var(--loss)">%s</span> (心理关口)；支撑位参考: <span style="color:var(--gain)">%s</span>, <span style="color:var(--gain)">%s</span>。<br>
    - 动能分析: %s 处成交量较当前减缓，显示高位%s动能出现阶段性变异，存在回踩支撑需求。
    </div></div>
    `,
		techStatus, fmtPrice(price), volText,
		res1, res2, sup1, sup2,
		res1, techAction,
	)

	fundingPct := t.FundingRate * 100
	fundingDesc, costSide := "中性水平", "多空双向"
	switch {
	case fundingPct < -0.01:
		fundingDesc, costSide = "显著负值", "空头"
	case fundingPct > 0.01:
		fundingDesc, costSide = "显著正值", "多头"
	}
	squeezeSide := "多头挤压 (Long Squeeze)"
	if fundingPct < 0 {
		squeezeSide = "空头挤压 (Short Squeeze)"
	}
	fundingColor := "var(--gain)"
	if fundingPct < 0 {
		fundingColor = "var(--loss)"
	}

	ratio := t.LongShort.Ratio
	domSide, weakSide := "空头", "多头"
	if ratio >= 1 {
		domSide, weakSide = "多头", "空头"
	}

	var fundStrategy string
	switch {
	case fundingPct < -0.01:
		fundStrategy = "结合负费率判断，当前市场主力正在利用负费率诱导空头入场，随后通过拉升强制空头止损。"
	case fundingPct > 0.02:
		fundStrategy = "结合极高正费率判断，主力利用派发筹码引发多头踩踏的风险加剧。"
	default:
		fundStrategy = "当前费率并未极端倒挂，行情更多由现货买盘真实驱动，相对健康。"
	}

	lsDisp := fmt.Sprintf("%.2f", ratio)
	if ratio == HighRatio {
		lsDisp = "极高"
	}

	p2 := fmt.Sprintf(`
    <div style="margin-bottom:14px;"><strong style="color:var(--text-primary);"><span style="color:var(--accent-rose); margin-right:4px;">2.</span> 筹码面博弈</strong><br>
    <div style="color:var(--text-secondary); margin-top:4px;">
    - 资金费率 <span style="color:%s">%.4f%%</span> 呈现%s，%s持仓成本极高，市场存在强烈的%s预期。<br>
    - 多空比 <span style="color:var(--text-primary);font-weight:600;">%s</span> 显示%s占据优势。%s<br>
    - 结论: 筹码结构利于<span style="color:var(--text-primary);font-weight:600;">%s</span>，%s在当前价位极度被动。
    </div></div>
    `,
		fundingColor, fundingPct, fundingDesc, costSide, squeezeSide,
		lsDisp, domSide, fundStrategy,
		domSide, weakSide,
	)

	p3 := fmt.Sprintf(`
    <div style="margin-bottom:14px;"><strong style="color:var(--text-primary);"><span style="color:var(--accent-emerald); margin-right:4px;">3.</span> 爆仓挤压预警</strong><br>
    <div style="color:var(--text-secondary); margin-top:4px;">
    - 空头爆仓区: <span style="color:var(--text-primary);">%s - %s</span> 区域为密集空头清算区，一旦突破 %s，将引发连环爆仓推动价格快速冲向 %s 以上。<br>
    - 多头清算区: <span style="color:var(--text-primary);">%s</span> 以下存在多头杠杆清算风险，若跌破 %s 关键支撑，回撤幅度将扩大。
    </div></div>
    `,
		fmtPrice(price*1.04), fmtPrice(price*1.08), fmtPrice(price*1.05), fmtPrice(price*1.12),
		fmtPrice(price*0.96), fmtPrice(price*0.93),
	)

	stratDir, stratColor := "空单", "var(--loss)"
	entry := fmt.Sprintf("%s - %s", fmtPrice(price*1.005), fmtPrice(price*1.02))
	stopLoss := fmtPrice(price * 1.05)
	target := fmtPrice(price * 0.90)
	midBreak := fmtPrice(price * 0.94)
	midTarget := fmtPrice(price * 0.80)
	warnAction := "左侧盲目接针"
	warnPrice := fmtPrice(price * 0.97)
	changeWord := "跌幅"
	if change >= 0 {
		stratDir, stratColor = "多单", "var(--gain)"
		entry = fmt.Sprintf("%s - %s", fmtPrice(price*0.98), fmtPrice(price*0.995))
		stopLoss = fmtPrice(price * 0.95)
		target = fmtPrice(price * 1.06)
		midBreak = fmtPrice(price * 1.06)
		midTarget = fmtPrice(price * 1.15)
		warnAction = "无保护追涨"
		warnPrice = fmtPrice(price * 1.03)
		changeWord = "涨幅"
	}

	p4 := fmt.Sprintf(`
    <div style="margin-bottom:0;"><strong style="color:var(--text-primary);"><span style="color:var(--warning-color); margin-right:4px;">4.</span> 实战策略清单</strong><br>
    <div style="color:var(--text-secondary); margin-top:4px;">
    - 短期: 建议在 <span style="color:var(--text-primary);">%s</span> 区域布局<span style="color:%s">%s</span>，止损硬性设于 %s，首个目标位 %s。<br>
    - 中期: 价格若放量突破 %s 且资金费率回归正常水平，可加仓看至 %s 区域。<br>
    - 长期: 鉴于 24H %s已达 %.2f%%，严禁在 %s 以上%s，需防范费率回归后的剧烈洗盘。
    </div></div>
    `,
		entry, stratColor, stratDir, stopLoss, target,
		midBreak, midTarget,
		changeWord, math.Abs(change), warnPrice, warnAction,
	)

	return p1 + p2 + p3 + p4
}
